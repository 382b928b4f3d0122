package entity

type GitHubActionsConfig struct {
	Name     string            `json:"name"`
	Triggers map[string]any    `json:"triggers"`
	Jobs     map[string]any    `json:"jobs"`
	Env      map[string]string `json:"env"`
}

type JenkinsStage struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

type JenkinsConfig struct {
	PipelineName string            `json:"pipeline_name"`
	Agent        string            `json:"agent"`
	Stages       []JenkinsStage    `json:"stages"`
	Environment  map[string]string `json:"environment"`
	Options      []string          `json:"options"`
}

type GitLabCIConfig struct {
	Stages    []string          `json:"stages"`
	Variables map[string]string `json:"variables"`
	Jobs      map[string]any    `json:"jobs"`
}
