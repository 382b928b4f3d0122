package entity

type StaticConfig struct {
	Targets []string `json:"targets" yaml:"targets"`
}

type ScrapeConfig struct {
	JobName       string         `json:"job_name" yaml:"job_name"`
	StaticConfigs []StaticConfig `json:"static_configs" yaml:"static_configs"`
	MetricsPath   string         `json:"metrics_path" yaml:"metrics_path"`
}

type PrometheusConfig struct {
	GlobalConfig  map[string]any `json:"global_config"`
	ScrapeConfigs []ScrapeConfig `json:"scrape_configs"`
	Alerting      map[string]any `json:"alerting"`
	RuleFiles     []string       `json:"rule_files"`
}

// DefaultPrometheusGlobal is the global block applied when a request does not
// override it.
func DefaultPrometheusGlobal() map[string]any {
	return map[string]any{
		"scrape_interval":     "15s",
		"evaluation_interval": "15s",
	}
}

type AlertRule struct {
	Name        string            `json:"name"`
	Expression  string            `json:"expression"`
	Duration    string            `json:"duration"`
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
}

type GrafanaDashboard struct {
	Title     string            `json:"title"`
	Panels    []map[string]any  `json:"panels"`
	Variables []map[string]any  `json:"variables"`
	Time      map[string]string `json:"time"`
}
