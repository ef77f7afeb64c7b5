package controllers

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	InternalConfig    *config.InternalConfig
	AssessmentUsecase contracts.AssessmentUsecase
	SessionUsecase    contracts.SessionUsecase
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	assessmentUsecase contracts.AssessmentUsecase,
	sessionUsecase contracts.SessionUsecase,
) *AssessmentController {
	onceAssessmentController.Do(func() {
		assessmentControllerInstance = &AssessmentController{
			Log:               logger,
			InternalConfig:    internalConfig,
			AssessmentUsecase: assessmentUsecase,
			SessionUsecase:    sessionUsecase,
		}
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pagination := utils.BuildPaginationRequest(r)
	if err := utils.ValidateStruct(pagination); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessments, total, err := ctrl.AssessmentUsecase.List(ctx, pagination)
	if err != nil {
		ctrl.Log.Error("AssessmentController.List error in AssessmentUsecase.List",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.MessageAssessmentsRetrieved, paginationResponse, assessments)
}

func (ctrl *AssessmentController) Get(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := ctrl.assessmentID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.Get(ctx, assessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageAssessmentRetrieved, assessment)
}

func (ctrl *AssessmentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request, ok := ctrl.decodeSubmission(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.Create error in AssessmentUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageAssessmentCreated, assessment)
}

func (ctrl *AssessmentController) Update(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := ctrl.assessmentID(w, r)
	if !ok {
		return
	}
	request, ok := ctrl.decodeSubmission(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	assessment, err := ctrl.AssessmentUsecase.Update(ctx, assessmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageAssessmentUpdated, assessment)
}

func (ctrl *AssessmentController) Delete(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := ctrl.assessmentID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := ctrl.AssessmentUsecase.Delete(ctx, assessmentID); err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageAssessmentDeleted, nil)
}

// StartEdit opens an edit session on the record and returns its token.
func (ctrl *AssessmentController) StartEdit(w http.ResponseWriter, r *http.Request) {
	assessmentID, ok := ctrl.assessmentID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SessionUsecase.StartEdit(ctx, assessmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageSessionStarted, response)
}

func (ctrl *AssessmentController) Import(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.Import called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("AssessmentController.Import error reading request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.AssessmentUsecase.Import(ctx, body)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageImportCompleted, result)
}

func (ctrl *AssessmentController) assessmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	assessmentID, err := utils.ParseAssessmentID(chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return 0, false
	}
	return assessmentID, true
}

func (ctrl *AssessmentController) decodeSubmission(w http.ResponseWriter, r *http.Request) (*requests.SubmitAssessment, bool) {
	request := new(requests.SubmitAssessment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}
	var err error
	if request.Responses, err = utils.SanitizeAnswers(request.Responses); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return nil, false
	}
	if request.Checklist, err = utils.SanitizeAnswers(request.Checklist); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return nil, false
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}
