package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s",
	"max":       "must be at most %s",
	"oneof":     "must be one of: %s",
	"numeric":   "must be a number",
	"gt":        "must be greater than %s",
	"cfs_field": "is not a questionnaire field",
	"cfs_value": "has a value outside the allowed answers",
	"datetime":  "must be a date in the format %s",
}

// Tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSessionEnded                  = "your assessment session ended, please start a new one"
	ErrClientAssessmentNotFound            = "assessment not found"
	ErrClientAnswersIncomplete             = "please answer every required question before calculating"
	ErrClientScoreUndetermined             = "cannot determine score from the self-care answers"
	ErrClientInvalidAnswer                 = "the answer is not valid for this question"
	ErrClientSessionBusy                   = "the assessment is being changed by another request, please retry"
	ErrClientAssessmentBeingEdited         = "the assessment is already open for editing"
	ErrClientSessionNotScored              = "please calculate the score before saving"
	ErrClientSessionAlreadySaved           = "this assessment session was already saved"
	ErrClientChecklistNotOffered           = "the chronic conditions checklist is not offered for this score"
	ErrClientNoDataToExport                = "no data to export"
	ErrClientExportUnavailable             = "export to object storage is not enabled"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "failed to validate url param %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthTokenInvalidOrExpired  = "token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevInvalidAPIKey              = "invalid api key"
	ErrDevAPIKeyRequired             = "api key required"
	ErrDevAssessmentNotFound         = "assessment %d not found"
	ErrDevSessionNotFound            = "session %s not found or expired"
	ErrDevSessionLocked              = "session %s is locked by another request"
	ErrDevAssessmentEditLocked       = "assessment %d is held by another edit session"
	ErrDevSessionNotScored           = "session is in state %s, expected scored"
	ErrDevSessionPersisted           = "session was already persisted"
	ErrDevAnswersIncomplete          = "answers incomplete"
	ErrDevScoreUnmatchedLeaf         = "self-care answers match no score rule"
	ErrDevInvalidAnswer              = "invalid answer"
	ErrDevChecklistNotOffered        = "chronic checklist not offered"
	ErrDevExportNoData               = "export has no records"
	ErrDevExportUnavailable          = "object storage export disabled"
	ErrDevExportWrite                = "failed to write export"
	ErrDevImportParse                = "failed to parse legacy import: %s"
	ErrDevRateLimited                = "rate limited"
	ErrDevStoreDriverUnknown         = "unknown store driver %s"
	ErrDevMongoDBFindDocument        = "failed to find document"
	ErrDevMongoDBInsertDocument      = "failed to insert document"
	ErrDevMongoDBUpdateDocument      = "failed to update document"
	ErrDevMongoDBDeleteDocument      = "failed to delete document"
	ErrDevMongoDBIterateDocuments    = "failed to iterate documents"
	ErrDevMongoDBNextSequence        = "failed to allocate next sequence"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisIncrementValue        = "failed to increment value in redis"
	ErrDevRedisTransaction           = "redis transaction failed"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevMinioFailedToEnsureBucket  = "failed to ensure bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
)
