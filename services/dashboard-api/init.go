package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/AlbertoHugonin/privacydashboard/pkg/apihelpers"
	"github.com/AlbertoHugonin/privacydashboard/pkg/db"
	"github.com/AlbertoHugonin/privacydashboard/pkg/notifier"
	"github.com/AlbertoHugonin/privacydashboard/pkg/user-management/pwhash"
	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	smtpclient "github.com/AlbertoHugonin/privacydashboard/pkg/smtp-client"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
	commDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/communication"
	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_DASHBOARD_USER_DB_USERNAME = "DASHBOARD_USER_DB_USERNAME"
	ENV_DASHBOARD_USER_DB_PASSWORD = "DASHBOARD_USER_DB_PASSWORD"
	ENV_APP_DB_USERNAME            = "APP_DB_USERNAME"
	ENV_APP_DB_PASSWORD            = "APP_DB_PASSWORD"
	ENV_COMMUNICATION_DB_USERNAME  = "COMMUNICATION_DB_USERNAME"
	ENV_COMMUNICATION_DB_PASSWORD  = "COMMUNICATION_DB_PASSWORD"

	ENV_DASHBOARD_USER_JWT_SIGN_KEY = "DASHBOARD_USER_JWT_SIGN_KEY"
	ENV_SMTP_PASSWORD               = "SMTP_PASSWORD"
)

type DashboardApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		DashboardUserJWTConfig struct {
			SignKey   string `json:"sign_key" yaml:"sign_key"`
			ExpiresIn string `json:"expires_in" yaml:"expires_in"`
		} `json:"dashboard_user_jwt_config" yaml:"dashboard_user_jwt_config"`
	} `json:"user_management_config" yaml:"user_management_config"`

	// DB configs
	DBConfigs struct {
		DashboardUserDB db.DBConfigYaml `json:"dashboard_user_db" yaml:"dashboard_user_db"`
		AppDB           db.DBConfigYaml `json:"app_db" yaml:"app_db"`
		CommunicationDB db.DBConfigYaml `json:"communication_db" yaml:"communication_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Email notification configs
	EmailNotifications struct {
		Enabled bool                      `json:"enabled" yaml:"enabled"`
		Smtp    smtpclient.SmtpServerList `json:"smtp" yaml:"smtp"`
	} `json:"email_notifications" yaml:"email_notifications"`
}

var (
	dashboardUserDBService *userDB.DashboardUserDBService
	appDBService           *appDB.AppDBService
	communicationDBService *commDB.CommunicationDBService

	dashboardUserJWTExpiresIn time.Duration
)

func init() {
	// Load local .env if present, e.g. for CONFIG_FILE_PATH during development
	_ = godotenv.Load()

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	expiresIn := conf.UserManagementConfig.DashboardUserJWTConfig.ExpiresIn
	if expiresIn == "" {
		expiresIn = "24h"
	}
	dashboardUserJWTExpiresIn, err = utils.ParseDurationString(expiresIn)
	if err != nil {
		panic(err)
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.UserManagementConfig.PWHashing.Argon2Memory,
		conf.UserManagementConfig.PWHashing.Argon2Iterations,
		conf.UserManagementConfig.PWHashing.Argon2Parallelism,
	)

	initNotifier()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_DASHBOARD_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.DashboardUserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_DASHBOARD_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.DashboardUserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_APP_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AppDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_APP_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AppDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_COMMUNICATION_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.CommunicationDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_COMMUNICATION_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.CommunicationDB.Password = dbPassword
	}

	if jwtSignKey := os.Getenv(ENV_DASHBOARD_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.UserManagementConfig.DashboardUserJWTConfig.SignKey = jwtSignKey
	}

	if smtpPassword := os.Getenv(ENV_SMTP_PASSWORD); smtpPassword != "" {
		for i := range conf.EmailNotifications.Smtp.Servers {
			conf.EmailNotifications.Smtp.Servers[i].SetPassword(smtpPassword)
		}
	}
}

func initDBs() {
	var err error
	dashboardUserDBService, err = userDB.NewDashboardUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.DashboardUserDB))
	if err != nil {
		slog.Error("Error connecting to Dashboard User DB", slog.String("error", err.Error()))
		panic(err)
	}

	appDBService, err = appDB.NewAppDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AppDB))
	if err != nil {
		slog.Error("Error connecting to App DB", slog.String("error", err.Error()))
		panic(err)
	}

	communicationDBService, err = commDB.NewCommunicationDBService(db.DBConfigFromYamlObj(conf.DBConfigs.CommunicationDB))
	if err != nil {
		slog.Error("Error connecting to Communication DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initNotifier() {
	var smtpClients *smtpclient.SmtpClients
	if conf.EmailNotifications.Enabled {
		var err error
		smtpClients, err = smtpclient.NewSmtpClients(conf.EmailNotifications.Smtp)
		if err != nil {
			slog.Error("Error setting up SMTP clients, email notifications stay disabled", slog.String("error", err.Error()))
			smtpClients = nil
		}
	}
	notifier.Init(communicationDBService, dashboardUserDBService, smtpClients)
}
