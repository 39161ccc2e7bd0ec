package db

import "fmt"

type DBConfig struct {
	URI              string
	DBNamePrefix     string
	Timeout          int
	MaxPoolSize      uint64
	IdleConnTimeout  int
	RunIndexCreation bool
}

type DBConfigYaml struct {
	ConnectionStr    string `yaml:"connection_str"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	ConnectionPrefix string `yaml:"connection_prefix"`
	Timeout          int    `yaml:"timeout"`
	IdleConnTimeout  int    `yaml:"idle_conn_timeout"`
	MaxPoolSize      int    `yaml:"max_pool_size"`
	DBNamePrefix     string `yaml:"db_name_prefix"`
	RunIndexCreation bool   `yaml:"run_index_creation"`
}

// DBConfigFromYamlObj builds the connection config from the yaml block.
// Credentials are optional so that local instances without auth work too.
func DBConfigFromYamlObj(yamlObj DBConfigYaml) DBConfig {
	uri := fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	if yamlObj.Username != "" {
		uri = fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)
	}

	return DBConfig{
		URI:              uri,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		Timeout:          yamlObj.Timeout,
		MaxPoolSize:      uint64(yamlObj.MaxPoolSize),
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
