// internal/router/router.go
package router

import (
	"time"

	"uxmetrics/internal/handlers"
	"uxmetrics/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, study *models.Study) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	sessionsHandler := handlers.NewSessionsHandler(log, study)
	observationsHandler := handlers.NewObservationsHandler(log, study)
	analyticsHandler := handlers.NewAnalyticsHandler(log, study)
	compareHandler := handlers.NewCompareHandler(log)
	reportsHandler := handlers.NewReportsHandler(log, study)
	chartsHandler := handlers.NewChartsHandler(log, study)

	// Rate limit on the write endpoints; reads stay unthrottled for
	// dashboard polling.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 120,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "study": study.ID})
	})

	api := router.Group("/api")
	{
		api.POST("/sessions", limiter, sessionsHandler.Create)
		api.POST("/sessions/:id/complete", limiter, sessionsHandler.Complete)
		api.POST("/sessions/:id/observations", limiter, observationsHandler.Submit)

		studies := api.Group("/studies/:id")
		{
			studies.GET("/summary", analyticsHandler.Summary)
			studies.GET("/errors", analyticsHandler.ErrorBreakdown)
			studies.GET("/compare", compareHandler.Compare)

			studies.GET("/reports", reportsHandler.List)
			studies.POST("/reports", limiter, reportsHandler.Create)
			studies.POST("/reports/import", limiter, reportsHandler.Import)

			studies.GET("/charts/timeline", chartsHandler.Timeline)
			studies.GET("/charts/correlation", chartsHandler.Correlation)
		}

		api.GET("/reports/:reportId/export", reportsHandler.Export)
	}

	return router
}
