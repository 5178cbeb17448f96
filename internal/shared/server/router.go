package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/export"
	"resume-matcher/internal/notify"
	"resume-matcher/internal/report"
	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config  config.Config
	Batches *resumes.Handler
	Export  *export.Handler
	Report  *report.Handler
	Notify  *notify.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitRule{Rate: 5, Burst: 20}, middleware.NewRateLimiter(nil)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.Batches.RegisterRoutes(api)
	deps.Export.RegisterRoutes(api)
	deps.Report.RegisterRoutes(api)
	deps.Notify.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
