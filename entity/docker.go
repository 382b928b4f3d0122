package entity

type DockerImageConfig struct {
	BaseImage    string            `json:"base_image"`
	Workdir      string            `json:"workdir"`
	ExposedPorts []int             `json:"exposed_ports"`
	Environment  map[string]string `json:"environment"`
	Commands     []string          `json:"commands"`
	Entrypoint   []string          `json:"entrypoint"`
	Labels       map[string]string `json:"labels"`
}

type DockerComposeService struct {
	Image       string            `json:"image"`
	Build       map[string]any    `json:"build"`
	Ports       []string          `json:"ports"`
	Environment map[string]string `json:"environment"`
	Volumes     []string          `json:"volumes"`
	DependsOn   []string          `json:"depends_on"`
	Networks    []string          `json:"networks"`
	Healthcheck map[string]any    `json:"healthcheck"`
}

type DockerComposeConfig struct {
	Version  string                          `json:"version"`
	Services map[string]DockerComposeService `json:"services"`
	Volumes  map[string]map[string]any       `json:"volumes"`
	Networks map[string]map[string]any       `json:"networks"`
}
