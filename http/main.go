package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/http/controller"
	routes "github.com/kngsnwn/gigapress/http/route"
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

	ctrl := controller.NewController(cfg, infra, repo, orch, vcsService)

	router := routes.SetupRouter(ctrl)

	addr := ":" + cfg.EnvConfig.Service.Port
	log.Println("HTTP Server started on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
