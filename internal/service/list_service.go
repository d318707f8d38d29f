package service

import (
	"context"

	"github.com/google/uuid"

	"unbored/internal/domain"
	"unbored/internal/repository"
	"unbored/pkg/logger"
)

// ListService owns the ordered list of chosen activities. All mutations run
// on the single UI control flow, so no locking is involved; every mutation
// is followed by a full rewrite of the persisted document before it counts
// as durable. Listeners are notified synchronously once a mutation has
// taken effect in memory.
type ListService struct {
	repo       repository.ActivityRepository
	logger     *logger.Logger
	activities []domain.Activity
	listeners  []func(domain.ListEvent)
}

// NewListService creates a new, empty list service
func NewListService(repo repository.ActivityRepository, logger *logger.Logger) *ListService {
	return &ListService{
		repo:   repo,
		logger: logger,
	}
}

// Subscribe registers a listener for list mutations
func (s *ListService) Subscribe(listener func(domain.ListEvent)) {
	s.listeners = append(s.listeners, listener)
}

// Load populates the list from the persisted document
func (s *ListService) Load(ctx context.Context) error {
	activities, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.activities = activities
	return nil
}

// InsertAtHead prepends an activity and persists the list
func (s *ListService) InsertAtHead(ctx context.Context, activity domain.Activity) error {
	s.activities = append([]domain.Activity{activity}, s.activities...)
	s.emit(domain.ListEvent{Kind: domain.ListInserted, Activity: activity})
	return s.persist(ctx)
}

// MoveUp swaps the activity with its predecessor. The first activity cannot
// move up; that case is a no-op with no save and no event. It reports
// whether a move happened.
func (s *ListService) MoveUp(ctx context.Context, id uuid.UUID) (bool, error) {
	i := s.indexOf(id)
	if i <= 0 {
		return false, nil
	}
	s.activities[i-1], s.activities[i] = s.activities[i], s.activities[i-1]
	s.emit(domain.ListEvent{Kind: domain.ListMoved, Activity: s.activities[i-1]})
	return true, s.persist(ctx)
}

// MoveDown swaps the activity with its successor; the last activity stays put
func (s *ListService) MoveDown(ctx context.Context, id uuid.UUID) (bool, error) {
	i := s.indexOf(id)
	if i < 0 || i >= len(s.activities)-1 {
		return false, nil
	}
	s.activities[i], s.activities[i+1] = s.activities[i+1], s.activities[i]
	s.emit(domain.ListEvent{Kind: domain.ListMoved, Activity: s.activities[i+1]})
	return true, s.persist(ctx)
}

// Remove deletes the activity by identity and persists the list. It reports
// whether the activity was present.
func (s *ListService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	removed := s.activities[i]
	s.activities = append(s.activities[:i], s.activities[i+1:]...)
	s.emit(domain.ListEvent{Kind: domain.ListRemoved, Activity: removed})
	return true, s.persist(ctx)
}

// Snapshot returns a copy of the ordered list for rendering or persistence
func (s *ListService) Snapshot() []domain.Activity {
	snapshot := make([]domain.Activity, len(s.activities))
	copy(snapshot, s.activities)
	return snapshot
}

// Len returns the number of activities in the list
func (s *ListService) Len() int {
	return len(s.activities)
}

// ActivityAt returns the activity at the given position
func (s *ListService) ActivityAt(i int) (domain.Activity, bool) {
	if i < 0 || i >= len(s.activities) {
		return domain.Activity{}, false
	}
	return s.activities[i], true
}

// IndexOf returns the position of the activity with the given identity, or
// -1 when it is not in the list.
func (s *ListService) IndexOf(id uuid.UUID) int {
	return s.indexOf(id)
}

func (s *ListService) indexOf(id uuid.UUID) int {
	for i, activity := range s.activities {
		if activity.ID == id {
			return i
		}
	}
	return -1
}

func (s *ListService) emit(event domain.ListEvent) {
	for _, listener := range s.listeners {
		listener(event)
	}
}

// persist rewrites the whole document. On failure the in-memory list keeps
// the mutation; the caller is expected to warn the user that durability was
// not achieved.
func (s *ListService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.Snapshot()); err != nil {
		s.logger.WithError(err).Error("Failed to persist activity list")
		return err
	}
	return nil
}
