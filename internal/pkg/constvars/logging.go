package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingSessionModeKey    = "session_mode"
	LoggingSessionStateKey   = "session_state"
	LoggingAssessmentIDKey   = "assessment_id"
	LoggingFieldKey          = "field"
	LoggingScoreKey          = "score"
	LoggingScoreRuleKey      = "score_rule"
	LoggingMissingFieldsKey  = "missing_fields"
	LoggingCountKey          = "count"
	LoggingStoreDriverKey    = "store_driver"
	LoggingRedisKey          = "redis_key"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingResponseLengthKey = "response_length"

	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration"

	LoggingImportedCountKey  = "imported_count"
	LoggingMismatchCountKey  = "mismatch_count"
	LoggingDroppedCountKey   = "dropped_count"
	LoggingSkippedCountKey   = "skipped_count"
	LoggingExportSizeKey     = "export_size"
	LoggingCronSpecKey       = "cron_spec"
	LoggingPaginationPageKey = "page"
	LoggingPaginationSizeKey = "page_size"
)
