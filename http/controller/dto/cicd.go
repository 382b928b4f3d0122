package dto

type BuildStep struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Framework string   `json:"framework"`
	Commands  []string `json:"commands"`
}

type CICDRequest struct {
	ProjectID    string      `json:"project_id" binding:"required"`
	PipelineType string      `json:"pipeline_type" binding:"required,oneof=github-actions jenkins gitlab-ci"`
	BuildSteps   []BuildStep `json:"build_steps"`
}
