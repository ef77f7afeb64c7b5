package assessments

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// AssessmentRedisRepository keeps one JSON value per assessment and a sorted
// set of ids scored by timestamp in milliseconds.
type AssessmentRedisRepository struct {
	Client *redis.Client
}

func NewAssessmentRedisRepository(client *redis.Client) contracts.AssessmentRepository {
	return &AssessmentRedisRepository{Client: client}
}

func assessmentKey(assessmentID int64) string {
	return fmt.Sprintf(constvars.RedisKeyAssessmentFormat, assessmentID)
}

func (repo *AssessmentRedisRepository) FindAll(ctx context.Context) ([]models.Assessment, error) {
	return repo.load(ctx, 0, -1)
}

func (repo *AssessmentRedisRepository) FindPage(ctx context.Context, offset, limit int) ([]models.Assessment, int, error) {
	total, err := repo.Client.ZCard(ctx, constvars.RedisKeyAssessmentIndex).Result()
	if err != nil {
		return nil, 0, exceptions.ErrRedisGet(err)
	}
	if total == 0 || int64(offset) >= total {
		return []models.Assessment{}, int(total), nil
	}

	assessments, err := repo.load(ctx, int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, 0, err
	}
	return assessments, int(total), nil
}

func (repo *AssessmentRedisRepository) load(ctx context.Context, start, stop int64) ([]models.Assessment, error) {
	ids, err := repo.Client.ZRevRange(ctx, constvars.RedisKeyAssessmentIndex, start, stop).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	if len(ids) == 0 {
		return []models.Assessment{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, assessmentKey(parsed))
	}

	values, err := repo.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	assessments := make([]models.Assessment, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var assessment models.Assessment
		if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		assessments = append(assessments, assessment)
	}
	return assessments, nil
}

func (repo *AssessmentRedisRepository) FindByID(ctx context.Context, assessmentID int64) (*models.Assessment, error) {
	raw, err := repo.Client.Get(ctx, assessmentKey(assessmentID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var assessment models.Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &assessment, nil
}

func (repo *AssessmentRedisRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	assessmentID, err := repo.Client.Incr(ctx, constvars.RedisKeyAssessmentSequence).Result()
	if err != nil {
		return exceptions.ErrRedisIncrement(err)
	}
	assessment.ID = assessmentID

	payload, err := json.Marshal(assessment)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	pipe := repo.Client.TxPipeline()
	pipe.Set(ctx, assessmentKey(assessmentID), payload, 0)
	pipe.ZAdd(ctx, constvars.RedisKeyAssessmentIndex, redis.Z{
		Score:  float64(assessment.Timestamp.UnixMilli()),
		Member: strconv.FormatInt(assessmentID, 10),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return exceptions.ErrRedisTransaction(err)
	}
	return nil
}

// Update overwrites an existing record only.
func (repo *AssessmentRedisRepository) Update(ctx context.Context, assessment *models.Assessment) error {
	payload, err := json.Marshal(assessment)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	updated, err := repo.Client.SetXX(ctx, assessmentKey(assessment.ID), payload, redis.KeepTTL).Result()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	if !updated {
		return exceptions.ErrAssessmentNotFound(nil, assessment.ID)
	}
	return nil
}

func (repo *AssessmentRedisRepository) Delete(ctx context.Context, assessmentID int64) error {
	pipe := repo.Client.TxPipeline()
	deleted := pipe.Del(ctx, assessmentKey(assessmentID))
	pipe.ZRem(ctx, constvars.RedisKeyAssessmentIndex, strconv.FormatInt(assessmentID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return exceptions.ErrRedisTransaction(err)
	}
	if deleted.Val() == 0 {
		return exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}
	return nil
}
