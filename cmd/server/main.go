package main

import (
	"os"

	"gotodo/internal/app/server"
	"gotodo/internal/app/server/config"
	"gotodo/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := server.Run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
