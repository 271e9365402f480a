package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"immat-api/config"
	"immat-api/controllers"
	"immat-api/middleware"
	"immat-api/repositories"
	"immat-api/services"
)

// SetupCORS allows the configured origins; "*" keeps the historical
// allow-all behaviour.
func SetupCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Services
	motorcycleService := services.NewMotorcycleService(repositories.NewMotorcycleRepository(db), services.NewDateNormalizer())
	provinceService := services.NewProvinceService(repositories.NewProvinceRepository(db))
	authService := services.NewAuthService(repositories.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	motorcycleController := controllers.NewMotorcycleController(motorcycleService)
	provinceController := controllers.NewProvinceController(provinceService)
	authController := controllers.NewAuthController(authService)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Immatriculation backend is running!")
	})

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "reachable"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Registrations
	immatric := r.Group("/immatric")
	{
		immatric.GET("", motorcycleController.GetMotorcycles)
		immatric.GET("/:frameNumber", motorcycleController.GetMotorcycle)
	}

	api := r.Group("/api")
	{
		// Reference data
		api.GET("/provinces", provinceController.GetProvinces)
		api.GET("/villes", provinceController.GetCities)

		// Auth
		api.POST("/login", middleware.RateLimit(loginLimiter, cfg.LoginRatePerMinute), authController.Login)
		api.GET("/me", middleware.AuthMiddleware(authService), authController.Me)

		motorcycles := api.Group("/motorcycles")
		motorcycles.Use(middleware.ValidateJSON())
		{
			motorcycles.POST("", motorcycleController.CreateMotorcycles)
			motorcycles.PUT("/:frameNumber", motorcycleController.UpdateMotorcycle)
		}
	}
}

// NewRouter builds the engine with the middleware chain used in every mode.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(SetupCORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	SetupRoutes(router, db, cfg)

	return router
}
