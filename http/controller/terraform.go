package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

var terraformModules = map[string][]string{
	"aws": {
		"vpc", "eks", "rds", "s3", "lambda", "api-gateway",
		"cloudfront", "elasticache", "ecs", "fargate",
	},
	"gcp": {
		"vpc", "gke", "cloud-sql", "gcs", "cloud-functions",
		"cloud-run", "pub-sub", "firestore",
	},
	"azure": {
		"vnet", "aks", "sql-database", "storage", "functions",
		"app-service", "cosmos-db", "service-bus",
	},
}

func (ctrl *Controller) GenerateTerraform(c *gin.Context) {
	var req dto.IaCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	var region string
	if len(req.Regions) > 0 {
		region = req.Regions[0]
	}

	var providers []entity.TerraformProvider
	var resources []entity.TerraformResource
	switch req.CloudProvider {
	case "aws":
		if region == "" {
			region = "us-east-1"
		}
		providers, resources = generator.AWSResources(req.ProjectID, region)
	case "gcp":
		providers, resources = generator.GCPResources(req.ProjectID, region)
	case "azure":
		providers, resources = generator.AzureResources(req.ProjectID, region)
	}

	variables := generator.VariablesTF([]entity.TerraformVariable{
		{
			Name:        "project_id",
			Type:        "string",
			Default:     req.ProjectID,
			Description: "Project identifier",
		},
		{
			Name:        "environment",
			Type:        "string",
			Default:     "dev",
			Description: "Environment name",
		},
	})

	outputs := generator.OutputsTF([]entity.TerraformOutput{
		{
			Name:        "cluster_endpoint",
			Value:       "module.kubernetes.cluster_endpoint",
			Description: "Kubernetes cluster endpoint",
		},
	})

	files := []manifestFile{
		{"main.tf", generator.MainTF(providers, resources)},
		{"variables.tf", variables},
		{"outputs.tf", outputs},
	}

	ctrl.cache(c.Request.Context(), fmt.Sprintf("terraform:%s:%s", req.ProjectID, req.CloudProvider), files)

	utils.JSON200(c, gin.H{
		"files":               files,
		"cloud_provider":      req.CloudProvider,
		"infrastructure_type": req.InfrastructureType,
	})
}

func (ctrl *Controller) GetTerraformModules(c *gin.Context) {
	cloudProvider := c.Param("cloud_provider")
	utils.JSON200(c, gin.H{
		"modules":  terraformModules[cloudProvider],
		"provider": cloudProvider,
	})
}
