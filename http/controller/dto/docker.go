package dto

type DockerfileRequest struct {
	ProjectID       string            `json:"project_id" binding:"required"`
	ServiceName     string            `json:"service_name" binding:"required"`
	Framework       string            `json:"framework" binding:"required"`
	ServiceType     string            `json:"service_type" binding:"required,oneof=frontend backend"`
	Ports           []int             `json:"ports"`
	EnvironmentVars map[string]string `json:"environment_vars"`
}

type DockerComposeServiceSpec struct {
	Name        string            `json:"name" binding:"required"`
	Image       string            `json:"image"`
	Build       map[string]any    `json:"build"`
	Ports       []string          `json:"ports"`
	Environment map[string]string `json:"environment"`
	Volumes     []string          `json:"volumes"`
	DependsOn   []string          `json:"depends_on"`
}

type DockerComposeRequest struct {
	ProjectID string                     `json:"project_id" binding:"required"`
	Services  []DockerComposeServiceSpec `json:"services" binding:"required,min=1,dive"`
}

type DockerignoreRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Framework string `json:"framework" binding:"required"`
}
