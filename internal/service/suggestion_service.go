package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"unbored/internal/domain"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

// SuggestionService asks the remote lookup for one activity and, on
// success, hands it to the list controller. At most one request is in
// flight at a time; the widget layer keeps the triggering control inert
// meanwhile, and the service itself refuses overlapping requests. There is
// no retry and no cancellation of an in-flight lookup.
type SuggestionService struct {
	client   SuggestionClient
	list     *ListService
	logger   *logger.Logger
	inFlight atomic.Bool

	now   func() time.Time
	newID func() uuid.UUID
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(client SuggestionClient, list *ListService, logger *logger.Logger) *SuggestionService {
	return &SuggestionService{
		client: client,
		list:   list,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
}

// InFlight reports whether a lookup is currently outstanding
func (s *SuggestionService) InFlight() bool {
	return s.inFlight.Load()
}

// Request performs one lookup with the given type choice (nil means any
// type) and filter criteria. On success the activity is stamped with its
// identity and chosen-at timestamp and inserted at the head of the list; a
// failed persist still returns the activity alongside the error, since the
// in-memory insert has happened. On a no-match or service fault the list is
// untouched.
func (s *SuggestionService) Request(ctx context.Context, typeTag *domain.ActivityType, criteria domain.FilterCriteria) (*domain.Activity, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, apperrors.NewValidationError("a lookup is already in progress")
	}
	defer s.inFlight.Store(false)

	criteria.Type = typeTag

	activity, err := s.client.Suggest(ctx, criteria)
	if err != nil {
		if apperrors.IsNoMatch(err) {
			s.logger.Debug("No activities match the current filters")
		} else {
			s.logger.WithError(err).Error("Activity lookup failed")
		}
		return nil, err
	}

	activity.ID = s.newID()
	activity.ChosenAt = s.now()

	if err := s.list.InsertAtHead(ctx, *activity); err != nil {
		return activity, err
	}
	return activity, nil
}
