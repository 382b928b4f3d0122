package entity

import "time"

type GenerationState string

const (
	GenerationPending    GenerationState = "pending"
	GenerationInProgress GenerationState = "in_progress"
	GenerationCompleted  GenerationState = "completed"
	GenerationFailed     GenerationState = "failed"
)

// GenerationJob is the progress record for one infrastructure generation run.
// It is mutated only by the run that owns it and read by status polls.
type GenerationJob struct {
	ProjectID          string          `json:"project_id"`
	Status             GenerationState `json:"status"`
	CurrentStep        string          `json:"current_step"`
	TotalSteps         int             `json:"total_steps"`
	ProgressPercentage float64         `json:"progress_percentage"`
	Messages           []string        `json:"messages"`
	Errors             []string        `json:"errors"`
	StartedAt          time.Time       `json:"started_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
}

func (j *GenerationJob) Terminal() bool {
	return j.Status == GenerationCompleted || j.Status == GenerationFailed
}

// InfrastructureConfig accumulates the artifacts generated for one project,
// keyed by filename within each category. It belongs to a single run.
type InfrastructureConfig struct {
	ProjectID  string            `json:"project_id"`
	Docker     map[string]string `json:"docker"`
	Kubernetes map[string]string `json:"kubernetes"`
	CICD       map[string]string `json:"cicd"`
	Git        map[string]string `json:"git"`
	Terraform  map[string]string `json:"terraform"`
	Monitoring map[string]string `json:"monitoring"`
	Version    string            `json:"version"`
	CreatedAt  time.Time         `json:"created_at"`
}

func NewInfrastructureConfig(projectID string) *InfrastructureConfig {
	return &InfrastructureConfig{
		ProjectID:  projectID,
		Docker:     map[string]string{},
		Kubernetes: map[string]string{},
		CICD:       map[string]string{},
		Git:        map[string]string{},
		Terraform:  map[string]string{},
		Monitoring: map[string]string{},
		Version:    "1.0.0",
		CreatedAt:  time.Now(),
	}
}

// Categories returns the artifact map per category name, skipping empty ones.
func (c *InfrastructureConfig) Categories() map[string]map[string]string {
	all := map[string]map[string]string{
		"docker":     c.Docker,
		"kubernetes": c.Kubernetes,
		"cicd":       c.CICD,
		"git":        c.Git,
		"terraform":  c.Terraform,
		"monitoring": c.Monitoring,
	}
	out := map[string]map[string]string{}
	for name, files := range all {
		if len(files) > 0 {
			out[name] = files
		}
	}
	return out
}

// Files flattens every category into a single filename -> content map,
// the layout committed to the project repository.
func (c *InfrastructureConfig) Files() map[string]string {
	files := map[string]string{}
	for _, category := range c.Categories() {
		for name, content := range category {
			files[name] = content
		}
	}
	return files
}
