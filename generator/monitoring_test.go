package generator

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kngsnwn/gigapress/entity"
)

func TestPrometheusConfigYAMLDefaults(t *testing.T) {
	body, err := PrometheusConfigYAML(entity.PrometheusConfig{
		ScrapeConfigs: DefaultScrapeConfigs([]string{"api", "web"}),
	})
	if err != nil {
		t.Fatalf("PrometheusConfigYAML: %v", err)
	}

	var parsed struct {
		Global        map[string]string `yaml:"global"`
		ScrapeConfigs []struct {
			JobName       string `yaml:"job_name"`
			MetricsPath   string `yaml:"metrics_path"`
			StaticConfigs []struct {
				Targets []string `yaml:"targets"`
			} `yaml:"static_configs"`
		} `yaml:"scrape_configs"`
	}
	if err := yaml.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("invalid prometheus.yml: %v", err)
	}

	if parsed.Global["scrape_interval"] != "15s" {
		t.Errorf("scrape_interval = %q", parsed.Global["scrape_interval"])
	}
	if len(parsed.ScrapeConfigs) != 2 {
		t.Fatalf("scrape configs = %d, want 2", len(parsed.ScrapeConfigs))
	}
	first := parsed.ScrapeConfigs[0]
	if first.JobName != "api" || first.MetricsPath != "/metrics" {
		t.Errorf("unexpected scrape job: %+v", first)
	}
	if first.StaticConfigs[0].Targets[0] != "api:9090" {
		t.Errorf("target = %q", first.StaticConfigs[0].Targets[0])
	}
}

func TestAlertRules(t *testing.T) {
	body, err := AlertRules(DefaultAlertRules())
	if err != nil {
		t.Fatalf("AlertRules: %v", err)
	}

	var parsed struct {
		Groups []struct {
			Name     string `yaml:"name"`
			Interval string `yaml:"interval"`
			Rules    []struct {
				Alert  string            `yaml:"alert"`
				Expr   string            `yaml:"expr"`
				Labels map[string]string `yaml:"labels"`
			} `yaml:"rules"`
		} `yaml:"groups"`
	}
	if err := yaml.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("invalid alert rules yaml: %v", err)
	}

	if len(parsed.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(parsed.Groups))
	}
	group := parsed.Groups[0]
	if group.Name != "gigapress_alerts" || group.Interval != "30s" {
		t.Errorf("unexpected group: %s/%s", group.Name, group.Interval)
	}
	if len(group.Rules) != 2 {
		t.Fatalf("rules = %d, want 2", len(group.Rules))
	}
	if group.Rules[0].Alert != "HighCPUUsage" || group.Rules[0].Labels["severity"] != "warning" {
		t.Errorf("unexpected first rule: %+v", group.Rules[0])
	}
	if group.Rules[1].Labels["severity"] != "critical" {
		t.Errorf("unexpected second rule severity: %q", group.Rules[1].Labels["severity"])
	}
}

func TestGrafanaDashboardJSON(t *testing.T) {
	body, err := GrafanaDashboardJSON(entity.GrafanaDashboard{
		Title:  "shop-01 Overview",
		Panels: []map[string]any{{"title": "CPU", "type": "graph"}},
	})
	if err != nil {
		t.Fatalf("GrafanaDashboardJSON: %v", err)
	}

	var parsed struct {
		Dashboard struct {
			Title string            `json:"title"`
			Time  map[string]string `json:"time"`
		} `json:"dashboard"`
		Overwrite bool `json:"overwrite"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("invalid dashboard json: %v", err)
	}
	if !parsed.Overwrite {
		t.Error("overwrite not set")
	}
	if parsed.Dashboard.Title != "shop-01 Overview" {
		t.Errorf("title = %q", parsed.Dashboard.Title)
	}
	if parsed.Dashboard.Time["from"] != "now-6h" {
		t.Errorf("default time range = %v", parsed.Dashboard.Time)
	}
}

func TestMetricsEndpoints(t *testing.T) {
	endpoints := MetricsEndpoints()
	if endpoints["spring-boot"] != "/actuator/prometheus" {
		t.Errorf("spring-boot endpoint = %q", endpoints["spring-boot"])
	}
	if endpoints["express"] != "/metrics" {
		t.Errorf("express endpoint = %q", endpoints["express"])
	}
}

func TestFluentdConf(t *testing.T) {
	for _, want := range []string{"@type forward", "port 24224", "logstash_prefix gigapress"} {
		if !strings.Contains(FluentdConf, want) {
			t.Errorf("fluentd.conf missing %q", want)
		}
	}
}
