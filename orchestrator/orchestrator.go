// Package orchestrator runs the asynchronous infrastructure generation
// sequence and tracks its progress.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
)

const totalSteps = 8

// Gateway reads project data from peer services. Absence (ok=false) is the
// uniform unavailable signal; reads never return errors.
type Gateway interface {
	GetProjectInfo(ctx context.Context, projectID string) (*entity.ProjectInfo, bool)
	GetDomainSchema(ctx context.Context, projectID string) (*entity.DomainSchema, bool)
	GetBackendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool)
	GetFrontendConfig(ctx context.Context, projectID string) (*entity.ServiceConfig, bool)
	NotifyInfraReady(ctx context.Context, projectID, kind string) bool
}

type VersionControl interface {
	InitRepository(projectID, repoName, description string) (*entity.GitRepository, error)
	CreateGitignore(projectID, repoName, template string) error
	CreateReadme(projectID, repoName string, content entity.ReadmeContent) error
	WriteFiles(projectID, repoName string, files map[string]string) error
	Commit(projectID, repoName string, commit entity.GitCommit) (string, error)
}

type EventPublisher interface {
	PublishRepositoryInitialized(ctx context.Context, projectID, repoName string) error
	PublishCommitCreated(ctx context.Context, projectID, message string) error
}

type BundleStore interface {
	SaveBundle(cfg *entity.InfrastructureConfig) (*entity.ArtifactBundle, error)
}

type Archive interface {
	StoreArtifacts(ctx context.Context, projectID string, files map[string]string) error
}

type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...any)
	WarningWithContextf(ctx context.Context, format string, args ...any)
	ErrorWithContextf(ctx context.Context, err error, format string, args ...any)
}

type Orchestrator struct {
	cfg     *config.Config
	gateway Gateway
	vcs     VersionControl
	events  EventPublisher
	bundles BundleStore
	archive Archive // nil disables archiving
	logger  Logger
	status  *StatusStore
}

func New(cfg *config.Config, gateway Gateway, vcs VersionControl, events EventPublisher, bundles BundleStore, archive Archive, logger Logger) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		gateway: gateway,
		vcs:     vcs,
		events:  events,
		bundles: bundles,
		archive: archive,
		logger:  logger,
		status:  NewStatusStore(),
	}
}

// Status returns a snapshot of the generation job for a project.
func (o *Orchestrator) Status(projectID string) (entity.GenerationJob, bool) {
	return o.status.Get(projectID)
}

// StartGeneration kicks off the generation sequence and returns immediately.
// Progress, completion and failure are observable only through Status.
// Starting again for the same project replaces the previous job record; the
// superseded run keeps executing but its status writes land nowhere.
func (o *Orchestrator) StartGeneration(projectID, cloudProvider, region string) {
	run := o.status.Create(projectID)
	o.status.start(projectID, run)
	go o.run(context.Background(), run, projectID, cloudProvider, region)
}

type stepError struct {
	step string
	err  error
}

func (e *stepError) Error() string {
	return fmt.Sprintf("%s: %v", e.step, e.err)
}

func (o *Orchestrator) run(ctx context.Context, run, projectID, cloudProvider, region string) {
	if err := o.generate(ctx, run, projectID, cloudProvider, region); err != nil {
		o.logger.ErrorWithContextf(ctx, err, "[Orchestrator] Generation failed for project %s: %v", projectID, err)
		o.status.fail(projectID, run, err.Error())
		return
	}
	o.logger.InfoWithContextf(ctx, "[Orchestrator] Generation completed for project %s", projectID)
}

func (o *Orchestrator) generate(ctx context.Context, run, projectID, cloudProvider, region string) error {
	infraCfg := entity.NewInfrastructureConfig(projectID)

	// Step 1: project metadata. Absence is the one fatal read, nothing can
	// be generated for an unknown project.
	o.status.beginStep(projectID, run, "Resolving project metadata")
	info, ok := o.gateway.GetProjectInfo(ctx, projectID)
	if !ok {
		return fmt.Errorf("project not found: %s", projectID)
	}
	schema, hasSchema := o.gateway.GetDomainSchema(ctx, projectID)
	o.status.completeStep(projectID, run, fmt.Sprintf("Resolved project %s", info.Name))

	// Step 2: repository.
	o.status.beginStep(projectID, run, "Initializing Git repository")
	repoName := info.Name
	if repoName == "" {
		repoName = projectID
	}
	if _, err := o.vcs.InitRepository(projectID, repoName, info.Description); err != nil {
		return &stepError{"failed to initialize repository", err}
	}
	if err := o.vcs.CreateGitignore(projectID, repoName, "node"); err != nil {
		return &stepError{"failed to create .gitignore", err}
	}
	readme := entity.ReadmeContent{
		ProjectName: repoName,
		Description: info.Description,
		License:     "MIT",
	}
	if err := o.vcs.CreateReadme(projectID, repoName, readme); err != nil {
		return &stepError{"failed to create README", err}
	}
	if err := o.events.PublishRepositoryInitialized(ctx, projectID, repoName); err != nil {
		o.logger.WarningWithContextf(ctx, "[Orchestrator] Failed to publish repository event: %v", err)
	}
	o.status.completeStep(projectID, run, fmt.Sprintf("Initialized repository %s", repoName))

	// Steps 3 and 4: per optional service config. A missing backend or
	// frontend config skips its branch, the step still advances.
	backendCfg, hasBackend := o.gateway.GetBackendConfig(ctx, projectID)
	frontendCfg, hasFrontend := o.gateway.GetFrontendConfig(ctx, projectID)

	var services []string
	if hasBackend {
		services = append(services, projectID+"-backend")
	}
	if hasFrontend {
		services = append(services, projectID+"-frontend")
	}

	o.status.beginStep(projectID, run, "Generating Docker configurations")
	if hasBackend {
		infraCfg.Docker["Dockerfile.backend"] = o.dockerfileFor(backendCfg, "backend", 3000)
	}
	if hasFrontend {
		infraCfg.Docker["Dockerfile.frontend"] = o.dockerfileFor(frontendCfg, "frontend", 3001)
	}
	if hasBackend || hasFrontend {
		compose, err := o.composeFor(projectID, backendCfg, frontendCfg, hasBackend, hasFrontend)
		if err != nil {
			return &stepError{"failed to generate docker-compose.yml", err}
		}
		infraCfg.Docker["docker-compose.yml"] = compose
	}
	o.status.completeStep(projectID, run, fmt.Sprintf("Generated Docker configurations for %d services", len(services)))

	o.status.beginStep(projectID, run, "Generating Kubernetes manifests")
	namespace, err := generator.K8sNamespace(o.cfg.EnvConfig.K8s.DefaultNamespace)
	if err != nil {
		return &stepError{"failed to generate namespace manifest", err}
	}
	infraCfg.Kubernetes["k8s/namespace.yaml"] = namespace
	if hasBackend {
		if err := o.deploymentFor(infraCfg, projectID, "backend", backendCfg, 3000); err != nil {
			return err
		}
	}
	if hasFrontend {
		if err := o.deploymentFor(infraCfg, projectID, "frontend", frontendCfg, 3001); err != nil {
			return err
		}
	}
	o.status.completeStep(projectID, run, fmt.Sprintf("Generated Kubernetes manifests for %d services", len(services)))

	// Step 5: CI/CD.
	o.status.beginStep(projectID, run, "Generating CI/CD pipelines")
	framework := "express"
	if hasBackend && backendCfg.Framework != "" {
		framework = backendCfg.Framework
	}
	workflow, err := generator.GitHubActions(entity.GitHubActionsConfig{
		Name: fmt.Sprintf("%s CI/CD", projectID),
		Triggers: map[string]any{
			"push":         map[string]any{"branches": []string{"main"}},
			"pull_request": map[string]any{"branches": []string{"main"}},
		},
		Jobs: generator.BuildWorkflow("backend", framework),
	})
	if err != nil {
		return &stepError{"failed to generate GitHub Actions workflow", err}
	}
	infraCfg.CICD[".github/workflows/main.yml"] = workflow
	o.status.completeStep(projectID, run, "Generated CI/CD pipelines")

	// Step 6: Terraform.
	o.status.beginStep(projectID, run, "Generating Terraform configuration")
	providers, resources := o.terraformFor(projectID, cloudProvider, region)
	infraCfg.Terraform["terraform/main.tf"] = generator.MainTF(providers, resources)
	o.status.completeStep(projectID, run, "Generated Terraform configuration")

	// Step 7: monitoring. Scrape targets come from the services generated
	// above; a project with no service configs still gets the base config.
	o.status.beginStep(projectID, run, "Generating monitoring configuration")
	prometheus, err := generator.PrometheusConfigYAML(entity.PrometheusConfig{
		ScrapeConfigs: generator.DefaultScrapeConfigs(services),
	})
	if err != nil {
		return &stepError{"failed to generate prometheus config", err}
	}
	infraCfg.Monitoring["monitoring/prometheus.yml"] = prometheus
	alerts, err := generator.AlertRules(generator.DefaultAlertRules())
	if err != nil {
		return &stepError{"failed to generate alert rules", err}
	}
	infraCfg.Monitoring["monitoring/alerts.yml"] = alerts
	o.status.completeStep(projectID, run, "Generated monitoring configuration")

	// Step 8: commit and finalize.
	o.status.beginStep(projectID, run, "Committing configurations")
	if err := o.vcs.WriteFiles(projectID, repoName, infraCfg.Files()); err != nil {
		return &stepError{"failed to write artifacts", err}
	}
	commitMessage := "Add infrastructure configurations"
	if _, err := o.vcs.Commit(projectID, repoName, entity.GitCommit{Message: commitMessage}); err != nil {
		return &stepError{"failed to commit artifacts", err}
	}
	if _, err := o.bundles.SaveBundle(infraCfg); err != nil {
		return &stepError{"failed to persist artifact bundle", err}
	}
	if o.archive != nil {
		if err := o.archive.StoreArtifacts(ctx, projectID, infraCfg.Files()); err != nil {
			o.logger.WarningWithContextf(ctx, "[Orchestrator] Failed to archive artifacts for %s: %v", projectID, err)
		}
	}
	if hasSchema {
		o.status.appendMessage(projectID, run, fmt.Sprintf("Domain schema version %s applied", schema.Version))
	}
	o.status.complete(projectID, run)

	if !o.gateway.NotifyInfraReady(ctx, projectID, "complete") {
		o.logger.WarningWithContextf(ctx, "[Orchestrator] Completion notification failed for %s", projectID)
	}
	if err := o.events.PublishCommitCreated(ctx, projectID, commitMessage); err != nil {
		o.logger.WarningWithContextf(ctx, "[Orchestrator] Failed to publish commit event: %v", err)
	}
	return nil
}

func (o *Orchestrator) dockerfileFor(svc *entity.ServiceConfig, serviceType string, defaultPort int) string {
	port := svc.Port
	if port == 0 {
		port = defaultPort
	}
	return generator.Dockerfile(entity.DockerImageConfig{
		BaseImage:    generator.BaseImage(svc.Framework),
		Workdir:      "/app",
		Commands:     generator.BuildCommands(svc.Framework, serviceType),
		ExposedPorts: []int{port},
		Environment:  svc.EnvVars,
	})
}

func (o *Orchestrator) composeFor(projectID string, backend, frontend *entity.ServiceConfig, hasBackend, hasFrontend bool) (string, error) {
	services := map[string]entity.DockerComposeService{}
	if hasBackend {
		port := backend.Port
		if port == 0 {
			port = 3000
		}
		services["backend"] = entity.DockerComposeService{
			Build:       map[string]any{"context": ".", "dockerfile": "Dockerfile.backend"},
			Ports:       []string{fmt.Sprintf("%d:%d", port, port)},
			Environment: backend.EnvVars,
			Networks:    []string{"gigapress-network"},
		}
	}
	if hasFrontend {
		port := frontend.Port
		if port == 0 {
			port = 3001
		}
		services["frontend"] = entity.DockerComposeService{
			Build:       map[string]any{"context": ".", "dockerfile": "Dockerfile.frontend"},
			Ports:       []string{fmt.Sprintf("%d:%d", port, port)},
			Environment: frontend.EnvVars,
			Networks:    []string{"gigapress-network"},
		}
	}
	return generator.DockerCompose(entity.DockerComposeConfig{
		Services: services,
		Networks: map[string]map[string]any{
			"gigapress-network": {"driver": "bridge"},
		},
	})
}

func (o *Orchestrator) deploymentFor(infraCfg *entity.InfrastructureConfig, projectID, serviceType string, svc *entity.ServiceConfig, defaultPort int) error {
	port := svc.Port
	if port == 0 {
		port = defaultPort
	}
	name := fmt.Sprintf("%s-%s", projectID, serviceType)

	deployment, err := generator.K8sDeployment(entity.K8sDeploymentConfig{
		Name:        name,
		Namespace:   o.cfg.EnvConfig.K8s.DefaultNamespace,
		Replicas:    o.cfg.EnvConfig.K8s.DefaultReplicas,
		Image:       fmt.Sprintf("%s/%s:latest", o.cfg.EnvConfig.Docker.Registry, name),
		Ports:       []int{port},
		Environment: svc.EnvVars,
	})
	if err != nil {
		return &stepError{fmt.Sprintf("failed to generate %s deployment", serviceType), err}
	}
	infraCfg.Kubernetes[fmt.Sprintf("k8s/%s-deployment.yaml", serviceType)] = deployment

	service, err := generator.K8sService(entity.K8sServiceConfig{
		Name:      name,
		Namespace: o.cfg.EnvConfig.K8s.DefaultNamespace,
		Ports:     []entity.K8sServicePort{{Port: port}},
		Selector:  map[string]string{"app": name},
	})
	if err != nil {
		return &stepError{fmt.Sprintf("failed to generate %s service", serviceType), err}
	}
	infraCfg.Kubernetes[fmt.Sprintf("k8s/%s-service.yaml", serviceType)] = service
	return nil
}

func (o *Orchestrator) terraformFor(projectID, cloudProvider, region string) ([]entity.TerraformProvider, []entity.TerraformResource) {
	switch cloudProvider {
	case "gcp":
		return generator.GCPResources(projectID, region)
	case "azure":
		return generator.AzureResources(projectID, region)
	default:
		if region == "" {
			region = "us-east-1"
		}
		return generator.AWSResources(projectID, region)
	}
}
