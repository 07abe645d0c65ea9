package main

import (
	"github.com/joho/godotenv"

	"jobmatch_backend/internal/app"
	"jobmatch_backend/internal/logger"
)

func main() {
	// .env is optional; env vars win over config.yaml when set.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err.Error())
	}

	app.Run()
}
