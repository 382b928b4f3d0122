package entity

// Payloads returned by peer GigaPress services. Extra fields in the wire
// responses are ignored; a missing payload is signalled by the gateway's
// ok=false return, never by an error.

type ProjectInfo struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectType string `json:"project_type"`
	Version     string `json:"version"`
}

type ServiceConfig struct {
	Port      int               `json:"port"`
	Framework string            `json:"framework"`
	EnvVars   map[string]string `json:"env_vars"`
}

type DomainSchema struct {
	ProjectID string   `json:"project_id"`
	Version   string   `json:"version"`
	Entities  []string `json:"entities"`
}
