package middlewares

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/services/shared/ratelimiter"
	redisRepo "cfs-service/internal/app/services/shared/redis"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-admin-api-key-12345"

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App:     config.App{AdminAPIKey: testAPIKey, RequestBodyLimitInMegabyte: 1},
			Session: config.AppSession{JWTSecret: "secret"},
		},
	}
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

func TestRequireAPIKey(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RequireAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool)
		assert.True(t, ok && apiKeyAuth, "api key flag should be set")
		okHandler(w, r)
	}))

	tests := []struct {
		name   string
		apiKey string
		want   int
	}{
		{"valid key", testAPIKey, http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "invalid-api-key", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/import", nil)
			if tt.apiKey != "" {
				req.Header.Set(constvars.HeaderXAPIKey, tt.apiKey)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestSessionToken(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.SessionToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session-1", utils.GetSessionID(r.Context()))
		okHandler(w, r)
	}))

	valid, err := utils.GenerateSessionJWT("session-1", "secret", time.Minute)
	require.NoError(t, err)
	forged, err := utils.GenerateSessionJWT("session-1", "other-secret", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong signature", "Bearer " + forged, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/current", nil)
			if tt.header != "" {
				req.Header.Set(constvars.HeaderAuthorization, tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRequestIDAndErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RequestID(m.Logging(m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))

	rr = httptest.NewRecorder()
	m.RequestID(http.HandlerFunc(okHandler)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, time.Minute)
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/export", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429}, codes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/export", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	clock := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Minute, time.Minute)
	limiter.now = func() time.Time { return clock }

	_, ok := limiter.admit("10.0.0.1")
	assert.True(t, ok)
	wait, ok := limiter.admit("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, wait)
	assert.Equal(t, 1, limiter.size())

	clock = clock.Add(3 * time.Minute)
	_, ok = limiter.admit("10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, 1, limiter.size())

	_, ok = limiter.admit("10.0.0.1")
	assert.True(t, ok)
}

func TestResourceQuota(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	m := newTestMiddlewares()
	m.ResourceLimiter = ratelimiter.NewResourceLimiter(redisRepo.NewRedisRepository(client), zap.NewNop())
	handler := m.ResourceQuota("export-publish", 1, time.Hour)(http.HandlerFunc(okHandler))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get(constvars.HeaderRetryAfter))

	unlimited := m.ResourceQuota("export-publish", 0, time.Hour)(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	unlimited.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
