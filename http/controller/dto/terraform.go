package dto

type IaCRequest struct {
	ProjectID          string   `json:"project_id" binding:"required"`
	CloudProvider      string   `json:"cloud_provider" binding:"required,oneof=aws gcp azure"`
	InfrastructureType string   `json:"infrastructure_type"`
	Regions            []string `json:"regions"`
}
