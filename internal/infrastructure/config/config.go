package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds how long an issued session token stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=1h"`
	// MinPasswordLen is a signup policy on top of the mandatory non-empty
	// check. Zero disables it.
	MinPasswordLen int `env:"MIN_PASSWORD_LENGTH, default=4"`
	// BcryptCost of 0 uses the bcrypt library default.
	BcryptCost int `env:"BCRYPT_COST, default=0"`
	// AuditWorkers sizes the audit dispatcher pool. Zero uses the default.
	AuditWorkers int `env:"AUDIT_WORKERS, default=0"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=board_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
