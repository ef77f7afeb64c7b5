package assessments

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/app/services/shared/eventqueue"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	Events               contracts.EventPublisher
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentRepository contracts.AssessmentRepository,
	events contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			AssessmentRepository: assessmentRepository,
			Events:               events,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) List(ctx context.Context, pagination *requests.Pagination) ([]models.Assessment, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPaginationPageKey, pagination.Page),
		zap.Int(constvars.LoggingPaginationSizeKey, pagination.PageSize),
	)

	offset := (pagination.Page - 1) * pagination.PageSize
	assessments, total, err := uc.AssessmentRepository.FindPage(ctx, offset, pagination.PageSize)
	if err != nil {
		uc.Log.Error("assessmentUsecase.List error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	uc.Log.Info("assessmentUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return assessments, total, nil
}

func (uc *assessmentUsecase) Get(ctx context.Context, assessmentID int64) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Get error fetching assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return assessment, nil
}

func (uc *assessmentUsecase) Create(ctx context.Context, request *requests.SubmitAssessment) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	responses, result, err := scoreSubmission(request)
	if err != nil {
		uc.Log.Info("assessmentUsecase.Create rejected answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	assessment := &models.Assessment{
		Responses:    responses,
		BasicDetails: utils.SanitizeBasicDetails(request.BasicDetails),
		Timestamp:    uc.now().UTC(),
	}
	assessment.ApplyResult(result)

	if err := uc.AssessmentRepository.Create(ctx, assessment); err != nil {
		uc.Log.Error("assessmentUsecase.Create error storing assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.Int(constvars.LoggingScoreKey, assessment.Score),
		zap.String(constvars.LoggingScoreRuleKey, result.Rule),
	)
	eventqueue.PublishAndLog(ctx, uc.Events, uc.Log, models.NewAssessmentEvent(constvars.EventAssessmentCreated, assessment, uc.now().UTC()))
	return assessment, nil
}

// Update re-scores the record and keeps its id and timestamp.
func (uc *assessmentUsecase) Update(ctx context.Context, assessmentID int64, request *requests.SubmitAssessment) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	responses, result, err := scoreSubmission(request)
	if err != nil {
		return nil, err
	}

	assessment.Responses = responses
	assessment.ApplyResult(result)
	if request.BasicDetails != nil {
		assessment.BasicDetails = utils.SanitizeBasicDetails(request.BasicDetails)
	}
	updatedAt := uc.now().UTC()
	assessment.UpdatedAt = &updatedAt

	if err := uc.AssessmentRepository.Update(ctx, assessment); err != nil {
		uc.Log.Error("assessmentUsecase.Update error storing assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingScoreKey, assessment.Score),
	)
	eventqueue.PublishAndLog(ctx, uc.Events, uc.Log, models.NewAssessmentEvent(constvars.EventAssessmentUpdated, assessment, updatedAt))
	return assessment, nil
}

func (uc *assessmentUsecase) Delete(ctx context.Context, assessmentID int64) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	if err := uc.AssessmentRepository.Delete(ctx, assessmentID); err != nil {
		uc.Log.Error("assessmentUsecase.Delete error deleting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return err
	}

	eventqueue.PublishAndLog(ctx, uc.Events, uc.Log, models.Event{
		Type:         constvars.EventAssessmentDeleted,
		AssessmentID: assessmentID,
		OccurredAt:   uc.now().UTC(),
	})
	return nil
}

// Import stores every usable legacy record. Complete answer sets are
// scored again; a stored score that disagrees is reported. Records that
// cannot be scored keep their stored score when it is a valid level.
func (uc *assessmentUsecase) Import(ctx context.Context, raw []byte) (*models.ImportResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Import called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var records []LegacyRecord
	err := utils.LogOperation(ctx, uc.Log, "import.parse", func() error {
		var parseErr error
		records, parseErr = ParseLegacyDump(raw)
		return parseErr
	})
	if err != nil {
		return nil, err
	}

	result := &models.ImportResult{}
	for _, record := range records {
		assessment, dropped, computed, ok := uc.fromLegacy(record)
		if !ok {
			result.Skipped++
			continue
		}

		if err := uc.AssessmentRepository.Create(ctx, assessment); err != nil {
			uc.Log.Error("assessmentUsecase.Import error storing assessment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return result, err
		}
		result.Imported++
		if len(dropped) > 0 {
			result.Dropped = append(result.Dropped, models.DroppedResponses{
				AssessmentID: assessment.ID,
				LegacyID:     record.LegacyID,
				Keys:         dropped,
			})
		}

		if computed {
			result.Rescored++
			if record.Score != 0 && record.Score != assessment.Score {
				result.Mismatches = append(result.Mismatches, models.ScoreMismatch{
					AssessmentID:  assessment.ID,
					StoredScore:   record.Score,
					ComputedScore: assessment.Score,
				})
			}
		}
	}

	uc.Log.Info("assessmentUsecase.Import succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingImportedCountKey, result.Imported),
		zap.Int(constvars.LoggingSkippedCountKey, result.Skipped),
		zap.Int(constvars.LoggingMismatchCountKey, len(result.Mismatches)),
		zap.Int(constvars.LoggingDroppedCountKey, len(result.Dropped)),
	)
	return result, nil
}

// fromLegacy converts one dump record. It reports the response keys it left
// out, whether the score was recomputed and whether the record is usable.
func (uc *assessmentUsecase) fromLegacy(record LegacyRecord) (*models.Assessment, []string, bool, bool) {
	rawAnswers, details, dropped := record.splitResponses()
	answers, err := cfs.NewAnswers(rawAnswers)
	if err != nil {
		return nil, nil, false, false
	}

	assessment := &models.Assessment{
		Responses:    answers,
		BasicDetails: details,
		Timestamp:    record.Timestamp,
		UpdatedAt:    record.UpdatedAt,
	}
	if assessment.Timestamp.IsZero() {
		assessment.Timestamp = uc.now().UTC()
	}

	if eval, err := cfs.Evaluate(answers); err == nil {
		assessment.Responses = eval.Answers
		assessment.ApplyResult(eval.Result)
		return assessment, dropped, true, true
	}

	if _, ok := cfs.LevelFor(record.Score); !ok {
		return nil, nil, false, false
	}
	assessment.Score = record.Score
	assessment.LevelTitle = record.LevelTitle
	if assessment.LevelTitle == "" {
		assessment.LevelTitle = cfs.LevelTitle(record.Score)
	}
	return assessment, dropped, false, true
}

// scoreSubmission validates, default-fills and scores a full answer set,
// then folds in the post-score checklist.
func scoreSubmission(request *requests.SubmitAssessment) (cfs.Answers, cfs.ScoreResult, error) {
	rawResponses, err := utils.SanitizeAnswers(request.Responses)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}
	answers, err := cfs.NewAnswers(rawResponses)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}

	eval, err := cfs.Evaluate(answers)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}

	rawChecklist, err := utils.SanitizeAnswers(request.Checklist)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}
	checklist, err := cfs.NewAnswers(rawChecklist)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}

	merged, err := cfs.MergeChecklist(eval.Answers, checklist, eval.Result.Level)
	if err != nil {
		return nil, cfs.ScoreResult{}, exceptions.FromCFSError(err)
	}
	return merged, eval.Result, nil
}
