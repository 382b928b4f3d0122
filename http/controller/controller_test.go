package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/orchestrator"
	"github.com/kngsnwn/gigapress/vcs"
)

type stubGateway struct{}

func (stubGateway) GetProjectInfo(ctx context.Context, projectID string) (*entity.ProjectInfo, bool) {
	return &entity.ProjectInfo{ProjectID: projectID, Name: projectID, ProjectType: "fullstack"}, true
}

func (stubGateway) GetDomainSchema(ctx context.Context, projectID string) (*entity.DomainSchema, bool) {
	return nil, false
}

func (stubGateway) GetBackendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool) {
	return &entity.ServiceConfig{Port: 8080, Framework: "express"}, true
}

func (stubGateway) GetFrontendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool) {
	return &entity.ServiceConfig{Port: 3000, Framework: "react"}, true
}

func (stubGateway) NotifyInfraReady(ctx context.Context, projectID, kind string) bool { return true }

type stubEvents struct{}

func (stubEvents) PublishRepositoryInitialized(ctx context.Context, projectID, repoName string) error {
	return nil
}

func (stubEvents) PublishCommitCreated(ctx context.Context, projectID, message string) error {
	return nil
}

type stubBundles struct{}

func (stubBundles) SaveBundle(cfg *entity.InfrastructureConfig) (*entity.ArtifactBundle, error) {
	return &entity.ArtifactBundle{}, nil
}

type stubLogger struct{}

func (stubLogger) InfoWithContextf(ctx context.Context, format string, args ...any)             {}
func (stubLogger) WarningWithContextf(ctx context.Context, format string, args ...any)          {}
func (stubLogger) ErrorWithContextf(ctx context.Context, err error, format string, args ...any) {}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{EnvConfig: &config.EnvConfig{}}
	cfg.EnvConfig.Service.Name = "infra-version-control-service"
	cfg.EnvConfig.Git.ReposDir = t.TempDir()
	cfg.EnvConfig.Git.DefaultBranch = "main"
	cfg.EnvConfig.Git.AuthorName = "GigaPress Bot"
	cfg.EnvConfig.Git.AuthorEmail = "bot@gigapress.io"
	cfg.EnvConfig.K8s.DefaultNamespace = "gigapress"
	cfg.EnvConfig.K8s.DefaultReplicas = 2
	cfg.EnvConfig.Docker.Registry = "localhost:5000"

	vcsService := vcs.NewService(cfg)
	orch := orchestrator.New(cfg, stubGateway{}, vcsService, stubEvents{}, stubBundles{}, nil, stubLogger{})

	return NewController(cfg, nil, nil, orch, vcsService)
}

type response struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

func doRequest(t *testing.T, handler gin.HandlerFunc, method, path string, body any, params ...gin.Param) (int, response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	handler(c)

	var resp response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return rr.Code, resp
}

func TestGenerateDockerfile(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateDockerfile, http.MethodPost, "/api/v1/docker/dockerfile", gin.H{
		"project_id":   "proj-1",
		"service_name": "web",
		"framework":    "react",
		"service_type": "frontend",
		"ports":        []int{3000},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	dockerfile, _ := resp.Data["dockerfile"].(string)
	if !strings.Contains(dockerfile, "FROM node:18-alpine") {
		t.Errorf("dockerfile missing base image:\n%s", dockerfile)
	}
	if !strings.Contains(dockerfile, "EXPOSE 3000") {
		t.Errorf("dockerfile missing exposed port:\n%s", dockerfile)
	}
	if resp.Data["service_name"] != "web" {
		t.Errorf("service_name = %v", resp.Data["service_name"])
	}
}

func TestGenerateDockerfileRejectsUnknownServiceType(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateDockerfile, http.MethodPost, "/api/v1/docker/dockerfile", gin.H{
		"project_id":   "proj-1",
		"service_name": "db",
		"framework":    "express",
		"service_type": "database",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestGenerateDockerCompose(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateDockerCompose, http.MethodPost, "/api/v1/docker/docker-compose", gin.H{
		"project_id": "proj-1",
		"services": []gin.H{
			{"name": "backend", "image": "proj-1-backend:latest", "ports": []string{"8080:8080"}},
			{"name": "frontend", "image": "proj-1-frontend:latest", "depends_on": []string{"backend"}},
		},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	compose, _ := resp.Data["docker_compose"].(string)
	for _, want := range []string{"backend:", "frontend:", "gigapress-network:"} {
		if !strings.Contains(compose, want) {
			t.Errorf("compose missing %q:\n%s", want, compose)
		}
	}
	if resp.Data["services_count"] != float64(2) {
		t.Errorf("services_count = %v", resp.Data["services_count"])
	}
}

func TestGenerateK8sManifests(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateK8sManifests, http.MethodPost, "/api/v1/kubernetes/manifests", gin.H{
		"project_id":  "proj-1",
		"environment": "prod",
		"services": []gin.H{
			{"name": "api", "image": "proj-1-api:latest", "ports": []int{8080}},
		},
		"enable_ingress": true,
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	manifests, _ := resp.Data["manifests"].([]any)
	names := map[string]bool{}
	for _, m := range manifests {
		entry := m.(map[string]any)
		names[entry["name"].(string)] = true
		if !strings.Contains(entry["content"].(string), "proj-1-prod") && entry["name"] != "kustomization.yaml" {
			t.Errorf("%s missing namespace proj-1-prod", entry["name"])
		}
	}
	for _, want := range []string{"namespace.yaml", "api-deployment.yaml", "api-service.yaml", "ingress.yaml", "kustomization.yaml"} {
		if !names[want] {
			t.Errorf("missing manifest %s, got %v", want, names)
		}
	}
}

func TestGeneratePipelineRejectsUnknownType(t *testing.T) {
	ctrl := newTestController(t)

	code, _ := doRequest(t, ctrl.GeneratePipeline, http.MethodPost, "/api/v1/cicd/pipeline", gin.H{
		"project_id":    "proj-1",
		"pipeline_type": "circleci",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
}

func TestGeneratePipelineJenkins(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GeneratePipeline, http.MethodPost, "/api/v1/cicd/pipeline", gin.H{
		"project_id":    "proj-1",
		"pipeline_type": "jenkins",
		"build_steps": []gin.H{
			{"name": "Compile", "commands": []string{"make build"}},
		},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	pipeline, _ := resp.Data["pipeline"].(string)
	for _, want := range []string{"pipeline {", "stage('Compile')", "sh 'make build'", "PROJECT_ID"} {
		if !strings.Contains(pipeline, want) {
			t.Errorf("pipeline missing %q:\n%s", want, pipeline)
		}
	}
	if resp.Data["filename"] != "Jenkinsfile" {
		t.Errorf("filename = %v", resp.Data["filename"])
	}
}

func TestGetPipelineTemplates(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GetPipelineTemplates, http.MethodGet, "/api/v1/cicd/templates/jenkins", nil,
		gin.Param{Key: "type", Value: "jenkins"})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	templates, _ := resp.Data["templates"].([]any)
	if len(templates) == 0 {
		t.Fatal("no templates returned")
	}
}

func TestGitInitAndBranches(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.InitRepository, http.MethodPost, "/api/v1/git/init", gin.H{
		"project_id":         "proj-1",
		"repo_name":          "my-app",
		"gitignore_template": "node",
		"include_readme":     true,
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}
	if resp.Data["default_branch"] != "main" {
		t.Errorf("default_branch = %v", resp.Data["default_branch"])
	}

	code, resp = doRequest(t, ctrl.CreateBranch, http.MethodPost, "/api/v1/git/branch", gin.H{
		"project_id": "proj-1",
		"repo_name":  "my-app",
		"name":       "develop",
	})
	if code != http.StatusOK {
		t.Fatalf("CreateBranch status = %d, error = %q", code, resp.Error)
	}

	code, resp = doRequest(t, ctrl.ListBranches, http.MethodGet, "/api/v1/git/branches/proj-1/my-app", nil,
		gin.Param{Key: "project_id", Value: "proj-1"}, gin.Param{Key: "repo_name", Value: "my-app"})
	if code != http.StatusOK {
		t.Fatalf("ListBranches status = %d, error = %q", code, resp.Error)
	}
	if resp.Data["total"] != float64(2) {
		t.Errorf("total = %v, branches = %v", resp.Data["total"], resp.Data["branches"])
	}
}

func TestListBranchesUnknownRepository(t *testing.T) {
	ctrl := newTestController(t)

	code, _ := doRequest(t, ctrl.ListBranches, http.MethodGet, "/api/v1/git/branches/ghost/ghost-app", nil,
		gin.Param{Key: "project_id", Value: "ghost"}, gin.Param{Key: "repo_name", Value: "ghost-app"})
	if code != http.StatusNotFound {
		t.Fatalf("status = %d", code)
	}
}

func TestGenerateGitWorkflowFallsBackToGitflow(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateGitWorkflow, http.MethodPost, "/api/v1/git/workflow", gin.H{
		"project_id":    "proj-1",
		"workflow_type": "trunk-based",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Data["type"] != "gitflow" {
		t.Errorf("type = %v", resp.Data["type"])
	}
}

func TestGenerateTerraform(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateTerraform, http.MethodPost, "/api/v1/terraform/generate", gin.H{
		"project_id":     "proj-1",
		"cloud_provider": "gcp",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	files, _ := resp.Data["files"].([]any)
	if len(files) != 3 {
		t.Fatalf("files = %d", len(files))
	}
	main := files[0].(map[string]any)
	if main["name"] != "main.tf" {
		t.Errorf("first file = %v", main["name"])
	}
	if !strings.Contains(main["content"].(string), "google_container_cluster") {
		t.Errorf("main.tf missing GKE cluster:\n%s", main["content"])
	}
}

func TestSetupMonitoringDefaultStack(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.SetupMonitoring, http.MethodPost, "/api/v1/monitoring/setup", gin.H{
		"project_id":      "proj-1",
		"log_aggregation": true,
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}

	files, _ := resp.Data["files"].([]any)
	names := map[string]bool{}
	for _, f := range files {
		names[f.(map[string]any)["name"].(string)] = true
	}
	for _, want := range []string{"prometheus.yml", "alerts.yml", "dashboard.json", "fluentd.conf"} {
		if !names[want] {
			t.Errorf("missing file %s, got %v", want, names)
		}
	}

	features := resp.Data["features"].(map[string]any)
	if features["logging"] != true {
		t.Errorf("features.logging = %v", features["logging"])
	}
	if features["alerting"] != false {
		t.Errorf("features.alerting = %v", features["alerting"])
	}
}

func TestGenerateCompleteInfraRequiresProjectID(t *testing.T) {
	ctrl := newTestController(t)

	code, _ := doRequest(t, ctrl.GenerateCompleteInfra, http.MethodPost, "/api/v1/orchestration/generate-complete-infra", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
}

func TestGenerateCompleteInfraAcknowledges(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.GenerateCompleteInfra, http.MethodPost,
		"/api/v1/orchestration/generate-complete-infra?project_id=proj-1", gin.H{"cloud_provider": "aws"})
	if code != http.StatusAccepted {
		t.Fatalf("status = %d, error = %q", code, resp.Error)
	}
	if resp.Data["status"] != "in_progress" {
		t.Errorf("status = %v", resp.Data["status"])
	}

	code, _ = doRequest(t, ctrl.GetGenerationStatus, http.MethodGet, "/api/v1/orchestration/status/proj-1", nil,
		gin.Param{Key: "project_id", Value: "proj-1"})
	if code != http.StatusOK {
		t.Fatalf("GetGenerationStatus status = %d", code)
	}

	// Let the background generation drain before the repos dir is cleaned up.
	deadline := time.After(5 * time.Second)
	for {
		job, ok := ctrl.Orchestrator.Status("proj-1")
		if ok && job.Terminal() {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("generation did not terminate, last status: %+v", job)
		case <-time.After(time.Millisecond):
		}
	}
}

func TestEnqueueGenerationRequiresProjectID(t *testing.T) {
	ctrl := newTestController(t)

	code, _ := doRequest(t, ctrl.EnqueueGeneration, http.MethodPost, "/api/v1/orchestration/enqueue", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
}

func TestEnqueueGenerationWithoutQueue(t *testing.T) {
	ctrl := newTestController(t)

	// No broker is wired in tests, so enqueueing must fail cleanly.
	code, resp := doRequest(t, ctrl.EnqueueGeneration, http.MethodPost,
		"/api/v1/orchestration/enqueue?project_id=proj-1", gin.H{"cloud_provider": "aws"})
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
}

func TestGetGenerationStatusUnknownProject(t *testing.T) {
	ctrl := newTestController(t)

	code, _ := doRequest(t, ctrl.GetGenerationStatus, http.MethodGet, "/api/v1/orchestration/status/ghost", nil,
		gin.Param{Key: "project_id", Value: "ghost"})
	if code != http.StatusNotFound {
		t.Fatalf("status = %d", code)
	}
}

func TestHealthCheck(t *testing.T) {
	ctrl := newTestController(t)

	code, resp := doRequest(t, ctrl.HealthCheck, http.MethodGet, "/health", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Data["service"] != "infra-version-control-service" {
		t.Errorf("service = %v", resp.Data["service"])
	}
	if resp.Data["status"] != "healthy" {
		t.Errorf("status = %v", resp.Data["status"])
	}
}
