package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultSecret     = "dev-only-secret"
	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
	defaultTokenTTL   = 24 * time.Hour

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
	Token  token
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type logger struct {
	LogLevel string
}

type token struct {
	Secret string
	TTL    time.Duration
}

// MustLoad reads configuration from the process environment, optionally
// seeded from a .env file. Missing values fall back to development defaults;
// the database URI has no default and stays empty if unset.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
		Token: token{
			Secret: viper.GetString("jwt_secret_key"),
			TTL:    viper.GetDuration("token_ttl"),
		},
	}

	if cfg.Env == "" {
		cfg.Env = EnvLocal
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = defaultMigrations
	}
	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = defaultRunAddress
	}
	if cfg.Token.Secret == "" {
		cfg.Token.Secret = defaultSecret
	}
	if cfg.Token.TTL <= 0 {
		cfg.Token.TTL = defaultTokenTTL
	}

	return &cfg
}
