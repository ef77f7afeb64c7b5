package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY   ContextKey = "session_id"
	CONTEXT_API_KEY_AUTH_KEY ContextKey = "api_key_auth"
)
