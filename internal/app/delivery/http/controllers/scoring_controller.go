package controllers

import (
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/dto/responses"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// ScoringController exposes the stateless scoring engine.
type ScoringController struct {
	Log *zap.Logger
}

var (
	scoringControllerInstance *ScoringController
	onceScoringController     sync.Once
)

func NewScoringController(logger *zap.Logger) *ScoringController {
	onceScoringController.Do(func() {
		scoringControllerInstance = &ScoringController{Log: logger}
	})
	return scoringControllerInstance
}

func (ctrl *ScoringController) Levels(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageLevelsRetrieved, cfs.Levels())
}

func (ctrl *ScoringController) Fields(w http.ResponseWriter, r *http.Request) {
	groups := cfs.Groups()
	response := make([]responses.FieldGroup, 0, len(groups))
	for _, group := range groups {
		response = append(response, responses.FieldGroup{Group: group, Fields: cfs.FieldsOf(group)})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageFieldsRetrieved, response)
}

func (ctrl *ScoringController) Visibility(w http.ResponseWriter, r *http.Request) {
	answers, ok := ctrl.decodeAnswers(w, r, "ScoringController.Visibility")
	if !ok {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageVisibilityResolved, responses.NewVisibility(answers))
}

func (ctrl *ScoringController) Score(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	answers, ok := ctrl.decodeAnswers(w, r, "ScoringController.Score")
	if !ok {
		return
	}

	eval, err := cfs.Evaluate(answers)
	if err != nil {
		ctrl.Log.Info("ScoringController.Score cannot score answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingMissingFieldsKey, cfs.ErrorFields(err)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return
	}

	ctrl.Log.Info("ScoringController.Score succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScoreKey, eval.Result.Level),
		zap.String(constvars.LoggingScoreRuleKey, eval.Result.Rule),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MessageScoreComputed, responses.NewScore(eval))
}

func (ctrl *ScoringController) decodeAnswers(w http.ResponseWriter, r *http.Request, operation string) (cfs.Answers, bool) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.EvaluateAnswers)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error(operation+" error parsing JSON body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}
	answersInput, err := utils.SanitizeAnswers(request.Answers)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return nil, false
	}
	request.Answers = answersInput

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error(operation+" validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}

	answers, err := cfs.NewAnswers(request.Answers)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.FromCFSError(err))
		return nil, false
	}
	return answers, true
}
