package sessions

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/app/services/shared/eventqueue"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/dto/responses"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionStore         contracts.SessionStore
	AssessmentRepository contracts.AssessmentRepository
	Locker               contracts.LockerService
	Events               contracts.EventPublisher
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	sessionStore contracts.SessionStore,
	assessmentRepository contracts.AssessmentRepository,
	locker contracts.LockerService,
	events contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			SessionStore:         sessionStore,
			AssessmentRepository: assessmentRepository,
			Locker:               locker,
			Events:               events,
			InternalConfig:       internalConfig,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) sessionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Session.ExpiredTimeInMinutes) * time.Minute
}

func (uc *sessionUsecase) lockTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Session.LockExpiredTimeInSeconds) * time.Second
}

func editLockKey(assessmentID int64) string {
	return fmt.Sprintf(constvars.RedisKeyAssessmentEditFormat, assessmentID)
}

func (uc *sessionUsecase) Start(ctx context.Context, request *requests.StartSession) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)

	now := uc.now().UTC()
	session := &models.Session{
		ID:           utils.GenerateSessionID(),
		Mode:         models.SessionModeNew,
		BasicDetails: utils.SanitizeBasicDetails(request.BasicDetails),
		Responses:    cfs.Answers{},
	}
	session.SetCreatedAtUpdatedAt(now)
	session.RecomputeState()

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.Session.JWTSecret, uc.sessionTTL())
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	if err := uc.SessionStore.Save(ctx, session, uc.sessionTTL()); err != nil {
		uc.Log.Error("sessionUsecase.Start error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("sessionUsecase.Start succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingSessionModeKey, string(session.Mode)),
	)
	return responses.NewSession(session, token), nil
}

// StartEdit opens an edit session on a stored record. The record stays
// locked for edits until the session is saved, discarded or expires.
func (uc *sessionUsecase) StartEdit(ctx context.Context, assessmentID int64) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.StartEdit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	acquired, lockValue, err := uc.Locker.TryLock(ctx, editLockKey(assessmentID), uc.sessionTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAssessmentEditLocked(nil, assessmentID)
	}

	now := uc.now().UTC()
	timestamp := assessment.Timestamp
	session := &models.Session{
		ID:            utils.GenerateSessionID(),
		Mode:          models.SessionModeEdit,
		AssessmentID:  assessment.ID,
		BasicDetails:  utils.SanitizeBasicDetails(assessment.BasicDetails),
		Responses:     assessment.Responses.Clone(),
		Timestamp:     &timestamp,
		EditLockValue: lockValue,
	}
	session.SetCreatedAtUpdatedAt(now)
	session.RecomputeState()

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.Session.JWTSecret, uc.sessionTTL())
	if err != nil {
		uc.releaseEditLock(ctx, session)
		return nil, exceptions.ErrTokenGenerate(err)
	}
	if err := uc.SessionStore.Save(ctx, session, uc.sessionTTL()); err != nil {
		uc.releaseEditLock(ctx, session)
		return nil, err
	}

	uc.Log.Info("sessionUsecase.StartEdit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingSessionStateKey, string(session.State)),
	)
	return responses.NewSession(session, token), nil
}

func (uc *sessionUsecase) Get(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return responses.NewSession(session, ""), nil
}

func (uc *sessionUsecase) SetAnswer(ctx context.Context, sessionID string, request *requests.SetAnswer) (*responses.Session, error) {
	field, err := cfs.ParseField(request.Field)
	if err != nil {
		return nil, exceptions.FromCFSError(err)
	}
	if err := cfs.ValidateValue(field, request.Value); err != nil {
		return nil, exceptions.FromCFSError(err)
	}

	session, err := uc.mutate(ctx, sessionID, func(session *models.Session) error {
		if session.Responses == nil {
			session.Responses = cfs.Answers{}
		}
		session.Responses[field] = request.Value
		session.Result = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Debug("sessionUsecase.SetAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingFieldKey, string(field)),
		zap.String(constvars.LoggingSessionStateKey, string(session.State)),
	)
	return responses.NewSession(session, ""), nil
}

func (uc *sessionUsecase) ClearAnswer(ctx context.Context, sessionID, rawField string) (*responses.Session, error) {
	field, err := cfs.ParseField(rawField)
	if err != nil {
		return nil, exceptions.FromCFSError(err)
	}

	session, err := uc.mutate(ctx, sessionID, func(session *models.Session) error {
		delete(session.Responses, field)
		session.Result = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewSession(session, ""), nil
}

func (uc *sessionUsecase) UpdateBasicDetails(ctx context.Context, sessionID string, request *requests.UpdateBasicDetails) (*responses.Session, error) {
	session, err := uc.mutate(ctx, sessionID, func(session *models.Session) error {
		session.BasicDetails = utils.MergeDetails(session.BasicDetails, request.BasicDetails)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewSession(session, ""), nil
}

// Calculate scores a complete session. The default-filled answers replace
// the session answers so a later save stores what was scored.
func (uc *sessionUsecase) Calculate(ctx context.Context, sessionID string) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)

	session, err := uc.mutate(ctx, sessionID, func(session *models.Session) error {
		eval, err := cfs.Evaluate(session.Responses)
		if err != nil {
			uc.Log.Info("sessionUsecase.Calculate cannot score answers",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Any(constvars.LoggingMissingFieldsKey, cfs.ErrorFields(err)),
				zap.Error(err),
			)
			return exceptions.FromCFSError(err)
		}
		session.Responses = eval.Answers
		result := eval.Result
		session.Result = &result
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("sessionUsecase.Calculate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingScoreKey, session.Result.Level),
		zap.String(constvars.LoggingScoreRuleKey, session.Result.Rule),
	)
	return responses.NewSession(session, ""), nil
}

// Save persists a scored session. New sessions create a record; edit
// sessions overwrite the record they were opened on and keep its
// timestamp.
func (uc *sessionUsecase) Save(ctx context.Context, sessionID string, request *requests.SaveSession) (*responses.SavedSession, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	rawChecklist, err := utils.SanitizeAnswers(request.Checklist)
	if err != nil {
		return nil, exceptions.FromCFSError(err)
	}
	checklist, err := cfs.NewAnswers(rawChecklist)
	if err != nil {
		return nil, exceptions.FromCFSError(err)
	}

	var (
		assessment *models.Assessment
		eventType  string
	)
	session, err := uc.mutate(ctx, sessionID, func(session *models.Session) error {
		if session.State != models.SessionStateScored || session.Result == nil {
			return exceptions.ErrSessionNotScored(nil, string(session.State))
		}

		merged, err := cfs.MergeChecklist(session.Responses, checklist, session.Result.Level)
		if err != nil {
			return exceptions.FromCFSError(err)
		}

		now := uc.now().UTC()
		assessment = &models.Assessment{
			Responses:    merged,
			BasicDetails: utils.MergeDetails(session.BasicDetails, outcomeDetails(request.Outcome)),
		}
		assessment.ApplyResult(*session.Result)

		if session.IsEdit() {
			assessment.ID = session.AssessmentID
			assessment.Timestamp = now
			if session.Timestamp != nil {
				assessment.Timestamp = *session.Timestamp
			}
			assessment.UpdatedAt = &now
			if err := uc.AssessmentRepository.Update(ctx, assessment); err != nil {
				return err
			}
			eventType = constvars.EventAssessmentUpdated
		} else {
			assessment.Timestamp = now
			if err := uc.AssessmentRepository.Create(ctx, assessment); err != nil {
				return err
			}
			session.AssessmentID = assessment.ID
			eventType = constvars.EventAssessmentCreated
		}

		session.Responses = merged
		session.BasicDetails = assessment.BasicDetails
		session.State = models.SessionStatePersisted
		return nil
	})
	if err != nil {
		uc.Log.Error("sessionUsecase.Save error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	if session.IsEdit() {
		uc.releaseEditLock(ctx, session)
	}

	utils.LogBusinessEvent(ctx, uc.Log, "assessment_saved",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingSessionModeKey, string(session.Mode)),
		zap.Int64(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.Int(constvars.LoggingScoreKey, assessment.Score),
	)
	eventqueue.PublishAndLog(ctx, uc.Events, uc.Log, models.NewAssessmentEvent(eventType, assessment, uc.now().UTC()))

	return &responses.SavedSession{Session: session, Assessment: assessment}, nil
}

func (uc *sessionUsecase) Discard(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)

	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return err
	}
	defer unlock()

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := uc.SessionStore.Delete(ctx, sessionID); err != nil {
		return err
	}
	if session.IsEdit() && session.State != models.SessionStatePersisted {
		uc.releaseEditLock(ctx, session)
	}

	uc.Log.Info("sessionUsecase.Discard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

// mutate loads the session under its lock, applies fn and stores the
// result with a fresh TTL. Persisted sessions are read only.
func (uc *sessionUsecase) mutate(ctx context.Context, sessionID string, fn func(session *models.Session) error) (*models.Session, error) {
	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionStatePersisted {
		return nil, exceptions.ErrSessionPersisted(nil)
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.RecomputeState()
	session.SetUpdatedAt(uc.now().UTC())

	if session.IsEdit() && session.State != models.SessionStatePersisted {
		if err := uc.Locker.Refresh(ctx, editLockKey(session.AssessmentID), session.EditLockValue, uc.sessionTTL()); err != nil {
			return nil, exceptions.ErrAssessmentEditLocked(err, session.AssessmentID)
		}
	}

	if err := uc.SessionStore.Save(ctx, session, uc.sessionTTL()); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *sessionUsecase) lockSession(ctx context.Context, sessionID string) (func(), error) {
	lockKey := fmt.Sprintf(constvars.RedisKeySessionLockFormat, sessionID)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.lockTTL())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSessionLocked(nil, sessionID)
	}

	return func() {
		if err := uc.Locker.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("sessionUsecase failed to release session lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *sessionUsecase) releaseEditLock(ctx context.Context, session *models.Session) {
	if err := uc.Locker.Unlock(ctx, editLockKey(session.AssessmentID), session.EditLockValue); err != nil {
		uc.Log.Warn("sessionUsecase failed to release edit lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int64(constvars.LoggingAssessmentIDKey, session.AssessmentID),
			zap.Error(err),
		)
	}
}

func outcomeDetails(outcome requests.Outcome) map[string]string {
	return map[string]string{
		constvars.DetailDisposition:  outcome.Disposition,
		constvars.DetailDNROrder:     outcome.DNROrder,
		constvars.DetailMortality:    outcome.Mortality,
		constvars.DetailLengthOfStay: outcome.LengthOfStay,
	}
}
