package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/metrika-dev/metrika/internal/auth"
	"github.com/metrika-dev/metrika/internal/config"
	"github.com/metrika-dev/metrika/internal/handlers"
	"github.com/metrika-dev/metrika/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Config     *config.Config
	Users      auth.UserStore
	Indicators *handlers.IndicatorHandler
	Auth       *handlers.AuthHandler
	Import     *handlers.ImportHandler
	Logger     *zap.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SecurityMiddleware(middleware.NewPatternClassifier(), deps.Logger))
	r.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst),
	))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", deps.Auth.Login)
			authGroup.GET("/me", middleware.AuthMiddleware(deps.Users), deps.Auth.Me)
		}

		indicators := api.Group("/indicators")
		{
			// Reads are public; mutations and the import trigger require auth.
			indicators.GET("", deps.Indicators.List)
			indicators.GET("/area/:area", deps.Indicators.ListByArea)
			indicators.GET("/stats/dashboard", deps.Indicators.Statistics)
			indicators.GET("/:id", deps.Indicators.Get)

			protected := indicators.Group("", middleware.AuthMiddleware(deps.Users))
			{
				protected.POST("", deps.Indicators.Create)
				protected.PATCH("/:id", deps.Indicators.Update)
				protected.DELETE("/:id", deps.Indicators.Delete)
				protected.POST("/import", deps.Import.Trigger)
			}
		}
	}

	return r
}
