package assessments

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestUsecase(t *testing.T) (*assessmentUsecase, *MockEventPublisher) {
	t.Helper()
	events := new(MockEventPublisher)
	return &assessmentUsecase{
		AssessmentRepository: newTestRedisRepository(t),
		Events:               events,
		Log:                  zap.NewNop(),
		now:                  func() time.Time { return fixedNow },
	}, events
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(event models.Event) bool { return event.Type == eventType })
}

// independentResponses answers the gate "0" and every BADLS, IADLS and
// chronic field "0", then applies overrides.
func independentResponses(overrides map[string]string) map[string]string {
	responses := map[string]string{"terminally": "0"}
	for _, group := range [][]cfs.Field{cfs.BADLSFields, cfs.IADLSFields, cfs.ChronicFields} {
		for _, f := range group {
			responses[string(f)] = "0"
		}
	}
	for k, v := range overrides {
		responses[k] = v
	}
	return responses
}

func TestAssessmentUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("scores, fills defaults and merges the checklist", func(t *testing.T) {
		uc, events := newTestUsecase(t)
		events.On("Publish", mock.Anything, eventOfType(constvars.EventAssessmentCreated)).Return(nil).Once()

		assessment, err := uc.Create(ctx, &requests.SubmitAssessment{
			Responses:    map[string]string{"Terminally": "0", "dress": "1", "eat": "0", "walk": "0", "bed": "0", "bath": "0"},
			BasicDetails: map[string]string{"mrno": " MR-7 "},
			Checklist:    map[string]string{"stroke": "1"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), assessment.ID)
		assert.Equal(t, 6, assessment.Score)
		assert.Equal(t, cfs.LevelTitle(6), assessment.LevelTitle)
		assert.Equal(t, fixedNow, assessment.Timestamp)
		assert.Equal(t, "0", assessment.Responses[cfs.FieldBath])
		assert.Equal(t, "1", assessment.Responses[cfs.FieldStroke])
		assert.Equal(t, "0", assessment.Responses[cfs.FieldCancer])
		assert.Equal(t, "MR-7", assessment.Detail("mrno"))
		events.AssertExpectations(t)
	})

	t.Run("incomplete answers are rejected with the missing fields", func(t *testing.T) {
		uc, events := newTestUsecase(t)

		_, err := uc.Create(ctx, &requests.SubmitAssessment{
			Responses: map[string]string{"terminally": "0", "dress": "0"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, exceptions.StatusCodeOf(err))
		assert.True(t, errors.Is(err, cfs.ErrIncompleteInput))
		events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("checklist below level five is rejected", func(t *testing.T) {
		uc, events := newTestUsecase(t)
		events.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Create(ctx, &requests.SubmitAssessment{
			Responses: independentResponses(map[string]string{"health": "2", "effort": "0", "sports": "1"}),
			Checklist: map[string]string{"stroke": "1"},
		})
		assert.True(t, errors.Is(err, cfs.ErrChecklistNotOffered))
		assert.Equal(t, http.StatusUnprocessableEntity, exceptions.StatusCodeOf(err))

		assessment, err := uc.Create(ctx, &requests.SubmitAssessment{
			Responses: independentResponses(map[string]string{"health": "2", "effort": "0", "sports": "1"}),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, assessment.Score)
	})

	t.Run("event failure does not fail the request", func(t *testing.T) {
		uc, events := newTestUsecase(t)
		events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		assessment, err := uc.Create(ctx, &requests.SubmitAssessment{
			Responses: map[string]string{"terminally": "1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, assessment.Score)
	})
}

func TestAssessmentUsecase_UpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	uc, events := newTestUsecase(t)
	events.On("Publish", mock.Anything, mock.Anything).Return(nil)

	created, err := uc.Create(ctx, &requests.SubmitAssessment{
		Responses:    map[string]string{"terminally": "1"},
		BasicDetails: map[string]string{"mrno": "MR-1"},
	})
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	uc.now = func() time.Time { return later }

	updated, err := uc.Update(ctx, created.ID, &requests.SubmitAssessment{
		Responses: map[string]string{"terminally": "1", "dress": "1", "eat": "1", "walk": "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9, updated.Score)
	assert.Equal(t, fixedNow, updated.Timestamp)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, later, *updated.UpdatedAt)
	assert.Equal(t, "MR-1", updated.Detail("mrno"))
	events.AssertCalled(t, "Publish", mock.Anything, eventOfType(constvars.EventAssessmentUpdated))

	_, err = uc.Update(ctx, 99, &requests.SubmitAssessment{Responses: map[string]string{"terminally": "1"}})
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestAssessmentUsecase_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, events := newTestUsecase(t)
	events.On("Publish", mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, &requests.SubmitAssessment{Responses: map[string]string{"terminally": "1"}})
		require.NoError(t, err)
	}

	page, total, err := uc.List(ctx, &requests.Pagination{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)

	require.NoError(t, uc.Delete(ctx, 2))
	events.AssertCalled(t, "Publish", mock.Anything, eventOfType(constvars.EventAssessmentDeleted))

	err = uc.Delete(ctx, 2)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, total, err = uc.List(ctx, &requests.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAssessmentUsecase_Import(t *testing.T) {
	ctx := context.Background()
	uc, events := newTestUsecase(t)

	raw := []byte(`[
		{"responses": {"terminally": "1"}, "score": 8, "timestamp": "2023-01-01T00:00:00Z"},
		{"responses": {"terminally": "1", "dress": "1", "eat": "1", "walk": "1"}, "score": 7, "timestamp": 1672531200000},
		{"responses": {"terminally": "0", "dress": "0"}, "score": 5, "levelTitle": "Living with Mild Frailty"},
		{"responses": {"terminally": "0"}, "score": 0},
		{"responses": {"pulse": "1"}, "score": 3},
		{"responses": {"terminally": "0", "dress": "maybe"}, "score": 4}
	]`)

	result, err := uc.Import(ctx, raw)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 2, result.Rescored)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, models.ScoreMismatch{AssessmentID: 2, StoredScore: 7, ComputedScore: 9}, result.Mismatches[0])
	assert.Equal(t, []models.DroppedResponses{{AssessmentID: 4, Keys: []string{"pulse"}}}, result.Dropped)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)

	kept, err := uc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, kept.Score)
	assert.Equal(t, fixedNow, kept.Timestamp)

	first, err := uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2023, first.Timestamp.Year())

	unscored, err := uc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, unscored.Score)
	assert.Empty(t, unscored.Responses)
}
