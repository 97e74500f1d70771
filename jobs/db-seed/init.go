package main

import (
	"log/slog"
	"os"

	"github.com/AlbertoHugonin/privacydashboard/pkg/db"
	"github.com/AlbertoHugonin/privacydashboard/pkg/user-management/pwhash"
	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
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
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		DashboardUserDB db.DBConfigYaml `json:"dashboard_user_db" yaml:"dashboard_user_db"`
		AppDB           db.DBConfigYaml `json:"app_db" yaml:"app_db"`
	} `json:"db_configs" yaml:"db_configs"`

	PWHashing struct {
		Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
		Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
		Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
	} `json:"pw_hashing" yaml:"pw_hashing"`

	SeedFilePath string `json:"seed_file_path" yaml:"seed_file_path"`
}

var conf config

var (
	dashboardUserDBService *userDB.DashboardUserDBService
	appDBService           *appDB.AppDBService
)

func init() {
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

	if conf.SeedFilePath == "" {
		panic("seed_file_path is not set")
	}

	pwhash.InitArgonParams(
		conf.PWHashing.Argon2Memory,
		conf.PWHashing.Argon2Iterations,
		conf.PWHashing.Argon2Parallelism,
	)

	initDBs()
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
}
