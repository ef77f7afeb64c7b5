package assessments

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisRepository(t *testing.T) *AssessmentRedisRepository {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return &AssessmentRedisRepository{Client: client}
}

func sampleAssessment(score int, at time.Time) *models.Assessment {
	return &models.Assessment{
		Responses:    cfs.Answers{cfs.FieldTerminally: "1"},
		BasicDetails: map[string]string{"mrno": "MR-1"},
		Score:        score,
		LevelTitle:   cfs.LevelTitle(score),
		Timestamp:    at,
	}
}

func TestAssessmentRedisRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRedisRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	first := sampleAssessment(8, base)
	second := sampleAssessment(9, base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, found.Score)
	assert.Equal(t, "MR-1", found.Detail("mrno"))
	assert.True(t, base.Equal(found.Timestamp))
}

func TestAssessmentRedisRepository_ListsNewestFirst(t *testing.T) {
	repo := newTestRedisRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleAssessment(3, base.Add(2*time.Hour))))
	require.NoError(t, repo.Create(ctx, sampleAssessment(4, base)))
	require.NoError(t, repo.Create(ctx, sampleAssessment(5, base.Add(time.Hour))))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{3, 5, 4}, []int{all[0].Score, all[1].Score, all[2].Score})

	page, total, err := repo.FindPage(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, 5, page[0].Score)

	page, total, err = repo.FindPage(ctx, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestAssessmentRedisRepository_UpdateAndDelete(t *testing.T) {
	repo := newTestRedisRepository(t)
	ctx := context.Background()

	assessment := sampleAssessment(8, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, assessment))

	assessment.Score = 9
	require.NoError(t, repo.Update(ctx, assessment))
	found, err := repo.FindByID(ctx, assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, found.Score)

	require.NoError(t, repo.Delete(ctx, assessment.ID))
	_, err = repo.FindByID(ctx, assessment.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAssessmentRedisRepository_MissingRecords(t *testing.T) {
	repo := newTestRedisRepository(t)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	err = repo.Update(ctx, &models.Assessment{ID: 42})
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	err = repo.Delete(ctx, 42)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
}
