package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers"
	"github.com/AlbertoHugonin/privacydashboard/services/dashboard-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var conf DashboardApiConfig

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)

	apiHandlers := apihandlers.NewHTTPHandler(
		conf.UserManagementConfig.DashboardUserJWTConfig.SignKey,
		dashboardUserJWTExpiresIn,
		dashboardUserDBService,
		appDBService,
		communicationDBService,
	)
	apiHandlers.AddSessionAPI(&router.RouterGroup)
	apiHandlers.AddDashboardAPI(&router.RouterGroup)

	if conf.GinConfig.DebugMode {
		if err := apihelpers.WriteRoutesToFile(router, "dashboard-api-routes.txt"); err != nil {
			slog.Error("could not write route list", slog.String("error", err.Error()))
		}
	}

	// Start the server
	slog.Info("Starting Dashboard API on port " + conf.GinConfig.Port)
	if !conf.GinConfig.MTLS.Use {
		err := router.Run(":" + conf.GinConfig.Port)
		if err != nil {
			slog.Error("Exited Dashboard API", slog.String("error", err.Error()))
			return
		}
	} else {
		// Create tls config for mutual TLS
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}

		server := &http.Server{
			Addr:      ":" + conf.GinConfig.Port,
			Handler:   router,
			TLSConfig: tlsConfig,
		}

		err = server.ListenAndServeTLS(conf.GinConfig.MTLS.CertificatePaths.ServerCertPath, conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath)
		if err != nil {
			slog.Error("Exited Dashboard API", slog.String("error", err.Error()))
			return
		}
	}
}
