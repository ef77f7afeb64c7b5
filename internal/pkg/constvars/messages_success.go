package constvars

const (
	ResponseSuccess    = "success"
	ResponseUnknown    = "unknown"
	ResponseHealthy    = "healthy"
	ResponseNoAnswer   = "Not answered"
	ResponseNotDefined = "Not specified"
)

const (
	MessageLevelsRetrieved      = "levels retrieved"
	MessageFieldsRetrieved      = "fields retrieved"
	MessageVisibilityResolved   = "visibility resolved"
	MessageScoreComputed        = "score computed"
	MessageSessionStarted       = "assessment session started"
	MessageSessionRetrieved     = "assessment session retrieved"
	MessageAnswerRecorded       = "answer recorded"
	MessageAnswerCleared        = "answer cleared"
	MessageBasicDetailsUpdated  = "basic details updated"
	MessageSessionScored        = "score calculated"
	MessageSessionSaved         = "assessment saved"
	MessageSessionDiscarded     = "assessment session discarded"
	MessageAssessmentsRetrieved = "assessments retrieved"
	MessageAssessmentRetrieved  = "assessment retrieved"
	MessageAssessmentCreated    = "assessment created"
	MessageAssessmentUpdated    = "assessment updated"
	MessageAssessmentDeleted    = "assessment deleted"
	MessageExportPublished      = "export published"
	MessageImportCompleted      = "import completed"
)
