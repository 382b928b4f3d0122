package dto

type K8sServiceSpec struct {
	Name        string                       `json:"name" binding:"required"`
	Image       string                       `json:"image" binding:"required"`
	Replicas    int                          `json:"replicas"`
	Ports       []int                        `json:"ports"`
	Environment map[string]string            `json:"environment"`
	Resources   map[string]map[string]string `json:"resources"`
	ServiceType string                       `json:"service_type"`
}

type K8sManifestRequest struct {
	ProjectID     string           `json:"project_id" binding:"required"`
	Environment   string           `json:"environment"`
	Services      []K8sServiceSpec `json:"services" binding:"required,min=1,dive"`
	EnableIngress bool             `json:"enable_ingress"`
	EnableHPA     bool             `json:"enable_hpa"`
}

type ConfigMapRequest struct {
	ProjectID string            `json:"project_id" binding:"required"`
	Name      string            `json:"name" binding:"required"`
	Data      map[string]string `json:"data" binding:"required"`
}

type SecretRequest struct {
	ProjectID string            `json:"project_id" binding:"required"`
	Name      string            `json:"name" binding:"required"`
	Data      map[string]string `json:"data" binding:"required"`
}
