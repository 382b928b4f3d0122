package entity

type K8sDeploymentConfig struct {
	Name        string                       `json:"name"`
	Namespace   string                       `json:"namespace"`
	Replicas    int                          `json:"replicas"`
	Image       string                       `json:"image"`
	Ports       []int                        `json:"ports"`
	Environment map[string]string            `json:"environment"`
	Resources   map[string]map[string]string `json:"resources"`
	Labels      map[string]string            `json:"labels"`
	Annotations map[string]string            `json:"annotations"`
}

type K8sServicePort struct {
	Port       int    `json:"port"`
	TargetPort int    `json:"target_port"`
	Protocol   string `json:"protocol"`
}

type K8sServiceConfig struct {
	Name      string            `json:"name"`
	Namespace string            `json:"namespace"`
	Type      string            `json:"type"`
	Ports     []K8sServicePort  `json:"ports"`
	Selector  map[string]string `json:"selector"`
}

type K8sIngressPath struct {
	Path        string `json:"path"`
	PathType    string `json:"path_type"`
	ServiceName string `json:"service_name"`
	ServicePort int    `json:"service_port"`
}

type K8sIngressConfig struct {
	Name        string            `json:"name"`
	Namespace   string            `json:"namespace"`
	Host        string            `json:"host"`
	Paths       []K8sIngressPath  `json:"paths"`
	TLSSecret   string            `json:"tls_secret"`
	Annotations map[string]string `json:"annotations"`
}

// DefaultK8sResources mirrors the documented request/limit defaults applied
// when a manifest request does not specify its own.
func DefaultK8sResources() map[string]map[string]string {
	return map[string]map[string]string{
		"limits":   {"memory": "512Mi", "cpu": "500m"},
		"requests": {"memory": "256Mi", "cpu": "250m"},
	}
}
