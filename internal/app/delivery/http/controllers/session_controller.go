package controllers

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionController serves the current assessment session. Every route
// except Start runs behind the session token middleware.
type SessionController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionUsecase contracts.SessionUsecase
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, internalConfig *config.InternalConfig, sessionUsecase contracts.SessionUsecase) *SessionController {
	onceSessionController.Do(func() {
		sessionControllerInstance = &SessionController{
			Log:            logger,
			InternalConfig: internalConfig,
			SessionUsecase: sessionUsecase,
		}
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) Start(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SessionController.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StartSession)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.Start(ctx, request)
	if err != nil {
		ctrl.Log.Error("SessionController.Start error in SessionUsecase.Start",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageSessionStarted, response)
}

func (ctrl *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.Get(ctx, utils.GetSessionID(r.Context()))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageSessionRetrieved, response)
}

func (ctrl *SessionController) SetAnswer(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())

	request := new(requests.SetAnswer)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Field = chi.URLParam(r, constvars.URLParamField)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("SessionController.SetAnswer validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.SetAnswer(ctx, sessionID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageAnswerRecorded, response)
}

func (ctrl *SessionController) ClearAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.ClearAnswer(ctx, utils.GetSessionID(r.Context()), chi.URLParam(r, constvars.URLParamField))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageAnswerCleared, response)
}

func (ctrl *SessionController) UpdateBasicDetails(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateBasicDetails)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.UpdateBasicDetails(ctx, utils.GetSessionID(r.Context()), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageBasicDetailsUpdated, response)
}

func (ctrl *SessionController) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.Calculate(ctx, utils.GetSessionID(r.Context()))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageSessionScored, response)
}

func (ctrl *SessionController) Save(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := utils.GetSessionID(r.Context())
	ctrl.Log.Info("SessionController.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	request := new(requests.SaveSession)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	checklist, err := utils.SanitizeAnswers(request.Checklist)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return
	}
	request.Checklist = checklist
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.Save(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Error("SessionController.Save error in SessionUsecase.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageSessionSaved, response)
}

func (ctrl *SessionController) Discard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := ctrl.SessionUsecase.Discard(ctx, utils.GetSessionID(r.Context())); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageSessionDiscarded, nil)
}
