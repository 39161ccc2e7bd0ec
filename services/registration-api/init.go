package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/db"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/registration"
	"github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/utils"

	registrationDB "github.com/TrizenCodeBase/IET-Hyderabad-backend/pkg/db/registration"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_REGISTRATION_DB_USERNAME = "REGISTRATION_DB_USERNAME"
	ENV_REGISTRATION_DB_PASSWORD = "REGISTRATION_DB_PASSWORD"
)

type RegistrationApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
		CorsMaxAge   string   `json:"cors_max_age" yaml:"cors_max_age"`
	} `json:"gin_config" yaml:"gin_config"`

	// DB configs
	DBConfigs struct {
		RegistrationDB db.DBConfigYaml `json:"registration_db" yaml:"registration_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Event table, falls back to the compiled-in defaults when empty
	EventTypes []registration.EventTypeConfig `json:"event_types" yaml:"event_types"`
}

var conf RegistrationApiConfig

var registrationDBService *registrationDB.RegistrationDBService

func init() {
	// Optional .env for local development
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
	utils.InitLogger(conf.Logging)

	// Override secrets from environment variables
	secretsOverride()

	if len(conf.EventTypes) == 0 {
		conf.EventTypes = registration.DefaultEventTypes()
	}

	// Init DB
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_REGISTRATION_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.RegistrationDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_REGISTRATION_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.RegistrationDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	registrationDBService, err = registrationDB.NewRegistrationDBService(db.DBConfigFromYamlObj(conf.DBConfigs.RegistrationDB), conf.EventTypes)
	if err != nil {
		slog.Error("Error connecting to Registration DB", slog.String("error", err.Error()))
		panic(err)
	}
}
