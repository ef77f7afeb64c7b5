package middlewares

import (
	"cfs-service/internal/app/services/shared/ratelimiter"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const limiterGroupAdmin = "admin"

// ResourceQuota caps calls to a resource across every instance within a
// fixed window. A zero quota disables the cap.
func (m *Middlewares) ResourceQuota(resourceName string, maxQuota int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.ResourceLimiter == nil || maxQuota <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
				ResourceName:     resourceName,
				LimiterGroupName: limiterGroupAdmin,
				WindowDuration:   window,
				MaxQuota:         maxQuota,
			})
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
				return
			}
			if !out.Allowed {
				utils.LogSecurityEvent(r.Context(), m.Log, "resource_quota_exceeded", "low",
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
