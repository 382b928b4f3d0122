package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/consumer/worker"
	infraPkg "github.com/kngsnwn/gigapress/infra"
	"github.com/kngsnwn/gigapress/orchestrator"
	"github.com/kngsnwn/gigapress/repository"
	"github.com/kngsnwn/gigapress/vcs"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)
	vcsService := vcs.NewService(cfg)

	var archive orchestrator.Archive
	if infra.Minio != nil {
		archive = infra.Minio
	}
	orch := orchestrator.New(cfg, infra.Integration, vcsService, infra.Produce.GitEvents, repo.Bundles, archive, infra.Logger)

	// Initialize context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infraConsumer := worker.NewInfraRequestConsumer(infra.RabbitMQ.Channel, infra, orch)
	if err := infraConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Infra consumer: %v", err)
		log.Fatalf("Failed to start Infra consumer: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")
}
