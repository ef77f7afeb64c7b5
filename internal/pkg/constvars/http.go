package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMETextCSV         = "text/csv"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMETextCSVCharsetUTF8         = "text/csv; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXAPIKey            = "X-API-Key"
	HeaderRetryAfter         = "Retry-After"

	AuthorizationBearerPrefix = "Bearer "
)

const (
	URLParamID    = "id"
	URLParamField = "field"
)
