package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"jobassist/cmd"
	httpin "jobassist/internal/adapters/in/http"
	"jobassist/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)

	jobManager := jobs.NewJobManager(
		app.CreatePruneStaleJobsCommandHandler(),
		time.Duration(configs.JobRetentionHours)*time.Hour,
		configs.PruneSchedule,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, using process environment")
	}

	config := cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		JobRetentionHours: envIntOrDefault("JOB_RETENTION_HOURS", 72),
		PruneSchedule:     envOrDefault("PRUNE_SCHEDULE", "0 * * * *"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		log.Fatalf("%s must be a positive integer, got %q", key, v)
	}
	return parsed
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateAddJobCommandHandler(),
		app.CreateGetAllJobsQueryHandler(),
		app.CreateGetJobQueryHandler(),
		app.CreateFindJobPairsQueryHandler(),
		app.CreateEvaluateSingleJobsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
