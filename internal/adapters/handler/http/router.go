package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/habitricky/docs"
	"github.com/comitanigiacomo/habitricky/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	MetricHandler *MetricHandler
	HabitHandler  *HabitHandler
	ReportHandler *ReportHandler

	Logger *zap.Logger

	// Redis enables rate limiting when set.
	Redis           *redis.Client
	RateLimit       int
	RateLimitWindow time.Duration

	// Registry enables the prometheus endpoint when set.
	Registry *prometheus.Registry

	AllowedOrigins []string
	SwaggerEnabled bool
	StartTime      time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 0 || (len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsCfg))

	if deps.Registry != nil {
		router.Use(middleware.NewHTTPMetrics(deps.Registry).Collect())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateLimitWindow, log))
	}

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "disabled"
		statusCode := 200
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	if deps.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiV1 := router.Group("/api/v1")
	{
		deps.MetricHandler.RegisterRoutes(apiV1)
		deps.HabitHandler.RegisterRoutes(apiV1)
		deps.ReportHandler.RegisterRoutes(apiV1)
	}

	return router
}
