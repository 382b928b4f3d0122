package dto

type MonitoringRequest struct {
	ProjectID        string   `json:"project_id" binding:"required"`
	MonitoringStack  []string `json:"monitoring_stack"`
	MetricsEndpoints []string `json:"metrics_endpoints"`
	LogAggregation   bool     `json:"log_aggregation"`
	Tracing          bool     `json:"tracing"`
	AlertingChannels []string `json:"alerting_channels"`
}

type OrchestrationRequest struct {
	CloudProvider string `json:"cloud_provider"`
	Region        string `json:"region"`
}
