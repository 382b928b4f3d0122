package generator

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kngsnwn/gigapress/entity"
)

type prometheusFile struct {
	Global        map[string]any        `yaml:"global"`
	Alerting      map[string]any        `yaml:"alerting,omitempty"`
	RuleFiles     []string              `yaml:"rule_files,omitempty"`
	ScrapeConfigs []entity.ScrapeConfig `yaml:"scrape_configs"`
}

// PrometheusConfigYAML renders a prometheus.yml body.
func PrometheusConfigYAML(cfg entity.PrometheusConfig) (string, error) {
	global := cfg.GlobalConfig
	if len(global) == 0 {
		global = entity.DefaultPrometheusGlobal()
	}

	body, err := yaml.Marshal(prometheusFile{
		Global:        global,
		Alerting:      cfg.Alerting,
		RuleFiles:     cfg.RuleFiles,
		ScrapeConfigs: cfg.ScrapeConfigs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prometheus.yml: %w", err)
	}
	return string(body), nil
}

type alertRuleEntry struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

type alertRuleGroup struct {
	Name     string           `yaml:"name"`
	Interval string           `yaml:"interval"`
	Rules    []alertRuleEntry `yaml:"rules"`
}

type alertRulesFile struct {
	Groups []alertRuleGroup `yaml:"groups"`
}

// AlertRules renders an alert_rules.yml with a single rule group.
func AlertRules(rules []entity.AlertRule) (string, error) {
	entries := make([]alertRuleEntry, 0, len(rules))
	for _, rule := range rules {
		entries = append(entries, alertRuleEntry{
			Alert:       rule.Name,
			Expr:        rule.Expression,
			For:         rule.Duration,
			Labels:      rule.Labels,
			Annotations: rule.Annotations,
		})
	}

	body, err := yaml.Marshal(alertRulesFile{
		Groups: []alertRuleGroup{{
			Name:     "gigapress_alerts",
			Interval: "30s",
			Rules:    entries,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to render alert rules: %w", err)
	}
	return string(body), nil
}

// DefaultAlertRules covers the baseline CPU and memory alerts every
// generated project receives.
func DefaultAlertRules() []entity.AlertRule {
	return []entity.AlertRule{
		{
			Name:       "HighCPUUsage",
			Expression: "rate(process_cpu_seconds_total[5m]) > 0.8",
			Duration:   "5m",
			Labels:     map[string]string{"severity": "warning"},
			Annotations: map[string]string{
				"summary":     "High CPU usage detected",
				"description": "CPU usage is above 80% for more than 5 minutes",
			},
		},
		{
			Name:       "HighMemoryUsage",
			Expression: "(1 - (node_memory_MemAvailable_bytes / node_memory_MemTotal_bytes)) > 0.9",
			Duration:   "5m",
			Labels:     map[string]string{"severity": "critical"},
			Annotations: map[string]string{
				"summary":     "High memory usage detected",
				"description": "Memory usage is above 90% for more than 5 minutes",
			},
		},
	}
}

// GrafanaDashboardJSON renders a Grafana dashboard import payload.
func GrafanaDashboardJSON(cfg entity.GrafanaDashboard) (string, error) {
	timeRange := cfg.Time
	if len(timeRange) == 0 {
		timeRange = map[string]string{"from": "now-6h", "to": "now"}
	}

	payload := map[string]any{
		"dashboard": map[string]any{
			"title":         cfg.Title,
			"panels":        cfg.Panels,
			"templating":    map[string]any{"list": cfg.Variables},
			"time":          timeRange,
			"schemaVersion": 36,
			"refresh":       "30s",
		},
		"overwrite": true,
	}

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render Grafana dashboard: %w", err)
	}
	return string(body), nil
}

// DefaultScrapeConfigs builds one scrape job per generated service.
func DefaultScrapeConfigs(services []string) []entity.ScrapeConfig {
	configs := make([]entity.ScrapeConfig, 0, len(services))
	for _, service := range services {
		configs = append(configs, entity.ScrapeConfig{
			JobName: service,
			StaticConfigs: []entity.StaticConfig{
				{Targets: []string{fmt.Sprintf("%s:9090", service)}},
			},
			MetricsPath: "/metrics",
		})
	}
	return configs
}

// MetricsEndpoints maps frameworks to the path their metrics are
// exposed on.
func MetricsEndpoints() map[string]string {
	return map[string]string{
		"spring-boot": "/actuator/prometheus",
		"express":     "/metrics",
		"django":      "/metrics",
		"go":          "/metrics",
		"default":     "/metrics",
	}
}

// FluentdConf is the log-forwarding config shipped with every project.
const FluentdConf = `<source>
  @type forward
  port 24224
  bind 0.0.0.0
</source>

<filter **>
  @type parser
  key_name log
  reserve_data true
  <parse>
    @type json
  </parse>
</filter>

<match **>
  @type elasticsearch
  host elasticsearch
  port 9200
  logstash_format true
  logstash_prefix gigapress
</match>
`
