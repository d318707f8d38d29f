package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unbored/internal/domain"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

// fakeClient hands back a scripted suggestion or error and records the
// criteria it was asked for.
type fakeClient struct {
	mu       sync.Mutex
	criteria []domain.FilterCriteria
	activity *domain.Activity
	err      error
	block    chan struct{}
}

func (c *fakeClient) Suggest(_ context.Context, criteria domain.FilterCriteria) (*domain.Activity, error) {
	c.mu.Lock()
	c.criteria = append(c.criteria, criteria)
	c.mu.Unlock()
	if c.block != nil {
		<-c.block
	}
	if c.err != nil {
		return nil, c.err
	}
	out := *c.activity
	return &out, nil
}

func suggestion() *domain.Activity {
	return &domain.Activity{
		Activity:      "Write a short story",
		Type:          domain.TypeRecreational,
		Participants:  1,
		Price:         0,
		Accessibility: 0.1,
		Key:           "6301585",
	}
}

func TestSuggestionService_SuccessInsertsAtHead(t *testing.T) {
	list, repo := loadedService(t, testActivity("existing"))
	client := &fakeClient{activity: suggestion()}
	svc := NewSuggestionService(client, list, logger.NewNop())

	chosen := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return chosen }

	tag := domain.TypeEducation
	activity, err := svc.Request(context.Background(), &tag, domain.FilterCriteria{})
	require.NoError(t, err)
	require.NotNil(t, activity)

	assert.Equal(t, chosen, activity.ChosenAt)
	assert.NotZero(t, activity.ID)

	assert.Equal(t, []string{"Write a short story", "existing"}, texts(list.Snapshot()))
	assert.Equal(t, 1, repo.saves, "a successful fetch persists the list")

	// The chosen type rode along on the criteria.
	require.Len(t, client.criteria, 1)
	require.NotNil(t, client.criteria[0].Type)
	assert.Equal(t, domain.TypeEducation, *client.criteria[0].Type)
}

func TestSuggestionService_NilTypeMeansAny(t *testing.T) {
	list, _ := loadedService(t)
	client := &fakeClient{activity: suggestion()}
	svc := NewSuggestionService(client, list, logger.NewNop())

	_, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, client.criteria, 1)
	assert.Nil(t, client.criteria[0].Type)
}

func TestSuggestionService_NoMatchLeavesListUntouched(t *testing.T) {
	list, repo := loadedService(t, testActivity("existing"))
	client := &fakeClient{err: apperrors.NewNoMatchError("nothing fits")}
	svc := NewSuggestionService(client, list, logger.NewNop())

	activity, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNoMatch(err))
	assert.Nil(t, activity)

	assert.Equal(t, []string{"existing"}, texts(list.Snapshot()))
	assert.Zero(t, repo.saves, "a no-match must not rewrite the document")
}

func TestSuggestionService_ServiceFaultLeavesListUntouched(t *testing.T) {
	list, repo := loadedService(t, testActivity("existing"))
	client := &fakeClient{err: apperrors.NewExternalError("boom", nil)}
	svc := NewSuggestionService(client, list, logger.NewNop())

	_, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
	require.Error(t, err)
	assert.False(t, apperrors.IsNoMatch(err))
	assert.Equal(t, []string{"existing"}, texts(list.Snapshot()))
	assert.Zero(t, repo.saves)
}

func TestSuggestionService_PersistFailureStillReturnsTheActivity(t *testing.T) {
	list, repo := loadedService(t)
	repo.saveErr = apperrors.NewPersistenceError("disk full", nil)
	client := &fakeClient{activity: suggestion()}
	svc := NewSuggestionService(client, list, logger.NewNop())

	activity, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
	require.Error(t, err)
	assert.True(t, apperrors.IsPersistence(err))
	require.NotNil(t, activity, "the in-memory insert happened; the caller needs the activity")
	assert.Equal(t, 1, list.Len())
}

func TestSuggestionService_SingleFlight(t *testing.T) {
	list, _ := loadedService(t)
	client := &fakeClient{activity: suggestion(), block: make(chan struct{})}
	svc := NewSuggestionService(client, list, logger.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
		done <- err
	}()

	// Wait for the first request to be in flight.
	require.Eventually(t, svc.InFlight, time.Second, time.Millisecond)

	_, err := svc.Request(context.Background(), nil, domain.FilterCriteria{})
	require.Error(t, err, "a second lookup is refused while one is outstanding")

	close(client.block)
	require.NoError(t, <-done)
	assert.False(t, svc.InFlight())
}
