package main

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/apihelpers"
	mw "github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/apihelpers/middlewares"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/utils"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/services/registration-api/apihandlers"
)

func main() {
	registrationService := registration.NewService(registrationDBService, conf.EventTypes)

	corsMaxAge, err := utils.ParseDurationStringWithDefault(conf.GinConfig.CorsMaxAge, 12*time.Hour)
	if err != nil {
		slog.Error("Invalid CORS max age config", slog.String("error", err.Error()))
		return
	}

	// Start webserver
	router := gin.Default()
	router.Use(mw.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "Accept"},
		ExposeHeaders:    []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	apiRoot := router.Group("/api")

	apiHandlers := apihandlers.NewHTTPHandler(registrationService)
	apiHandlers.AddRegistrationAPI(apiRoot)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "registration-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Registration API on port " + conf.GinConfig.Port)
	if err := router.Run(":" + conf.GinConfig.Port); err != nil {
		slog.Error("Exited Registration API", slog.String("error", err.Error()))
		return
	}
}
