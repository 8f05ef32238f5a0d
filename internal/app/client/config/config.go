package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	storageDirName       = ".gotodo"
	storageFileName      = "gotodo.db"
)

type Config struct {
	ServerAddress string
	EnableTLS     bool
	Env           string
	StoragePath   string
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := Config{
		ServerAddress: viper.GetString("gotodo_server"),
		EnableTLS:     viper.GetBool("gotodo_tls"),
		Env:           viper.GetString("app_env"),
		StoragePath:   viper.GetString("gotodo_storage"),
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultServerAddress
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = defaultStoragePath()
	}

	return &cfg
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return storageFileName
	}
	return filepath.Join(home, storageDirName, storageFileName)
}
