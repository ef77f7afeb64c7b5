package constvars

// Redis key layout. Every key lives under the "cfs:" namespace.
const (
	RedisKeyAssessmentSequence = "cfs:assessment:seq"
	RedisKeyAssessmentIndex    = "cfs:assessment:index"
	RedisKeyAssessmentFormat   = "cfs:assessment:%d"

	RedisKeySessionFormat        = "cfs:session:%s"
	RedisKeySessionLockFormat    = "cfs:lock:session:%s"
	RedisKeyAssessmentEditFormat = "cfs:lock:edit:%d"

	RedisKeyExportSnapshotLeader = "cfs:lock:export-snapshot"
)

// RedisKeyRateLimitFormat is group, resource and window number.
const RedisKeyRateLimitFormat = "cfs:ratelimit:%s:%s:%d"
