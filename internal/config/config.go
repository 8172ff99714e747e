package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int

	// Remote categorizer settings. The server runs fine with the remote
	// categorizer disabled; rule-based categorization always applies.
	AICategorizerEnabled bool
	AICategorizerModel   string
	AICategorizerTimeout time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		HTTPPort:        "9446",
		OperatorWorkers: 4,

		AICategorizerEnabled: false,
		AICategorizerModel:   "gemini-2.0-flash",
		AICategorizerTimeout: 5 * time.Second,
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); v != "" {
		env.PostgresAddress = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		env.PostgresPort = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		env.PostgresDB = v
	}
	if v := os.Getenv("POSTGRES_USERNAME"); v != "" {
		env.PostgresUsername = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		env.PostgresPassword = v
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		env.HTTPPort = v
	}
	if v := os.Getenv("OPERATOR_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("AI_CATEGORIZER_ENABLED"); v != "" {
		env.AICategorizerEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("AI_CATEGORIZER_MODEL"); v != "" {
		env.AICategorizerModel = v
	}
	if v := os.Getenv("AI_CATEGORIZER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		env.AICategorizerTimeout = timeout
	}

	return &env, nil
}
