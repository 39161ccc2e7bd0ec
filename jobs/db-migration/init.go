package main

import (
	"log/slog"
	"os"

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

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		RegistrationDB db.DBConfigYaml `json:"registration_db" yaml:"registration_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Event table, falls back to the compiled-in defaults when empty
	EventTypes []registration.EventTypeConfig `json:"event_types" yaml:"event_types"`

	// Task configurations
	TaskConfigs struct {
		DropIndexes   bool `json:"drop_indexes" yaml:"drop_indexes"`
		CreateIndexes bool `json:"create_indexes" yaml:"create_indexes"`
		GetIndexes    bool `json:"get_indexes" yaml:"get_indexes"`
	} `json:"task_configs" yaml:"task_configs"`
}

var conf config

var registrationDBService *registrationDB.RegistrationDBService

func init() {
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

	// init db
	initDBs()
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
