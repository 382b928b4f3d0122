package controller

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

func (ctrl *Controller) SetupMonitoring(c *gin.Context) {
	var req dto.MonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}
	if len(req.MonitoringStack) == 0 {
		req.MonitoringStack = []string{"prometheus", "grafana"}
	}

	var files []manifestFile

	if slices.Contains(req.MonitoringStack, "prometheus") {
		prometheus, err := generator.PrometheusConfigYAML(entity.PrometheusConfig{
			ScrapeConfigs: generator.DefaultScrapeConfigs(req.MetricsEndpoints),
		})
		if err != nil {
			utils.JSON500(c, "Failed to generate prometheus config: "+err.Error())
			return
		}
		files = append(files, manifestFile{"prometheus.yml", prometheus})

		alerts, err := generator.AlertRules(generator.DefaultAlertRules())
		if err != nil {
			utils.JSON500(c, "Failed to generate alert rules: "+err.Error())
			return
		}
		files = append(files, manifestFile{"alerts.yml", alerts})
	}

	if slices.Contains(req.MonitoringStack, "grafana") {
		dashboard, err := generator.GrafanaDashboardJSON(entity.GrafanaDashboard{
			Title: req.ProjectID + " Overview",
			Panels: []map[string]any{
				{
					"title":   "CPU Usage",
					"type":    "graph",
					"targets": []map[string]any{{"expr": "rate(process_cpu_seconds_total[5m])"}},
				},
				{
					"title":   "Memory Usage",
					"type":    "graph",
					"targets": []map[string]any{{"expr": "process_resident_memory_bytes"}},
				},
				{
					"title":   "HTTP Request Rate",
					"type":    "graph",
					"targets": []map[string]any{{"expr": "rate(http_requests_total[5m])"}},
				},
			},
		})
		if err != nil {
			utils.JSON500(c, "Failed to generate dashboard: "+err.Error())
			return
		}
		files = append(files, manifestFile{"dashboard.json", dashboard})
	}

	if req.LogAggregation {
		files = append(files, manifestFile{"fluentd.conf", generator.FluentdConf})
	}

	ctrl.cache(c.Request.Context(), "monitoring:"+req.ProjectID, files)

	utils.JSON200(c, gin.H{
		"files": files,
		"stack": req.MonitoringStack,
		"features": gin.H{
			"metrics":  true,
			"logging":  req.LogAggregation,
			"tracing":  req.Tracing,
			"alerting": len(req.AlertingChannels) > 0,
		},
	})
}

func (ctrl *Controller) GetMetricsEndpoints(c *gin.Context) {
	utils.JSON200(c, gin.H{
		"endpoints": generator.MetricsEndpoints(),
	})
}
