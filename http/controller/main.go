package controller

import (
	"context"
	"time"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/infra"
	"github.com/kngsnwn/gigapress/orchestrator"
	"github.com/kngsnwn/gigapress/repository"
	"github.com/kngsnwn/gigapress/vcs"
)

const cacheTTL = time.Hour

type Controller struct {
	Config       *config.Config
	Infra        *infra.Infra
	Repository   *repository.Repository
	Orchestrator *orchestrator.Orchestrator
	VCS          *vcs.Service

	startTime time.Time
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository, orch *orchestrator.Orchestrator, vcsService *vcs.Service) *Controller {
	if orch == nil {
		panic("Failed to initialize Orchestrator")
	}
	if vcsService == nil {
		panic("Failed to initialize VCS service")
	}
	return &Controller{
		Config:       cfg,
		Infra:        infra,
		Repository:   repo,
		Orchestrator: orch,
		VCS:          vcsService,
		startTime:    time.Now(),
	}
}

// cache stores a generated artifact, best effort. Generation must not fail
// because the cache is down.
func (ctrl *Controller) cache(ctx context.Context, key string, value any) {
	if ctrl.Infra == nil || ctrl.Infra.Redis == nil {
		return
	}
	if err := ctrl.Infra.Redis.Set(ctx, key, value, cacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Controller] Failed to cache %s: %v", key, err)
	}
}
