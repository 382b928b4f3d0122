package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/entity"
)

// IntegrationService talks to the peer GigaPress services. Reads never fail:
// any transport error or non-2xx answer is reported as the payload being
// absent, so callers decide what absence means.
type IntegrationService struct {
	MCPServerURL             string
	DomainSchemaServiceURL   string
	BackendServiceURL        string
	DesignFrontendServiceURL string

	client *http.Client
	logger *LoggerClient
}

func InitIntegrationService(cfg *config.EnvConfig, logger *LoggerClient) *IntegrationService {
	return &IntegrationService{
		MCPServerURL:             cfg.ExternalService.MCPServerURL,
		DomainSchemaServiceURL:   cfg.ExternalService.DomainSchemaServiceURL,
		BackendServiceURL:        cfg.ExternalService.BackendServiceURL,
		DesignFrontendServiceURL: cfg.ExternalService.DesignFrontendServiceURL,
		client:                   &http.Client{Timeout: 30 * time.Second},
		logger:                   logger,
	}
}

func fetch[T any](ctx context.Context, s *IntegrationService, url, what string) (*T, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.ErrorWithContextf(ctx, err, "[Integration] Failed to build %s request: %v", what, err)
		return nil, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarningWithContextf(ctx, "[Integration] %s unreachable: %v", what, err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.WarningWithContextf(ctx, "[Integration] %s returned status %d", what, resp.StatusCode)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.WarningWithContextf(ctx, "[Integration] Failed to read %s response: %v", what, err)
		return nil, false
	}

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.WarningWithContextf(ctx, "[Integration] Failed to decode %s response: %v", what, err)
		return nil, false
	}
	return &payload, true
}

func (s *IntegrationService) GetProjectInfo(ctx context.Context, projectID string) (*entity.ProjectInfo, bool) {
	url := fmt.Sprintf("%s/api/v1/projects/%s", s.MCPServerURL, projectID)
	return fetch[entity.ProjectInfo](ctx, s, url, "project info")
}

func (s *IntegrationService) GetDomainSchema(ctx context.Context, projectID string) (*entity.DomainSchema, bool) {
	url := fmt.Sprintf("%s/api/v1/schema/%s", s.DomainSchemaServiceURL, projectID)
	return fetch[entity.DomainSchema](ctx, s, url, "domain schema")
}

func (s *IntegrationService) GetBackendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool) {
	url := fmt.Sprintf("%s/api/v1/config/%s", s.BackendServiceURL, projectID)
	return fetch[entity.ServiceConfig](ctx, s, url, "backend config")
}

func (s *IntegrationService) GetFrontendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool) {
	url := fmt.Sprintf("%s/api/v1/config/%s", s.DesignFrontendServiceURL, projectID)
	return fetch[entity.ServiceConfig](ctx, s, url, "frontend config")
}

// NotifyInfraReady tells the MCP server that infrastructure generation
// finished. Best effort only.
func (s *IntegrationService) NotifyInfraReady(ctx context.Context, projectID, kind string) bool {
	payload, err := json.Marshal(map[string]string{
		"project_id": projectID,
		"event":      "infra_ready",
		"type":       kind,
		"service":    "infra-version-control-service",
	})
	if err != nil {
		return false
	}

	url := fmt.Sprintf("%s/api/v1/notifications", s.MCPServerURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarningWithContextf(ctx, "[Integration] Notification failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.WarningWithContextf(ctx, "[Integration] Notification returned status %d", resp.StatusCode)
		return false
	}
	return true
}
