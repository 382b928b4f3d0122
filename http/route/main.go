package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/http/controller"
	middlewares "github.com/kngsnwn/gigapress/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()

	middles := middlewares.NewMiddlewares(ctrl.Config)
	r.Use(middles.CORS())

	// Probes stay outside the API group so they bypass auth.
	r.GET("/health", ctrl.HealthCheck)
	r.GET("/ready", ctrl.ReadinessCheck)
	r.GET("/live", ctrl.LivenessCheck)

	apiRoutes := r.Group("/api/v1")
	{
		apiRoutes.Use(middles.PrivateKeyAuth())

		dockerRoutes := apiRoutes.Group("/docker")
		{
			dockerRoutes.POST("/dockerfile", ctrl.GenerateDockerfile)
			dockerRoutes.POST("/docker-compose", ctrl.GenerateDockerCompose)
			dockerRoutes.POST("/dockerignore", ctrl.GenerateDockerignore)
		}

		k8sRoutes := apiRoutes.Group("/kubernetes")
		{
			k8sRoutes.POST("/manifests", ctrl.GenerateK8sManifests)
			k8sRoutes.POST("/configmap", ctrl.GenerateConfigMap)
			k8sRoutes.POST("/secret", ctrl.GenerateSecret)
		}

		cicdRoutes := apiRoutes.Group("/cicd")
		{
			cicdRoutes.POST("/pipeline", ctrl.GeneratePipeline)
			cicdRoutes.GET("/templates/:type", ctrl.GetPipelineTemplates)
		}

		gitRoutes := apiRoutes.Group("/git")
		{
			gitRoutes.POST("/init", ctrl.InitRepository)
			gitRoutes.POST("/commit", ctrl.CreateCommit)
			gitRoutes.POST("/branch", ctrl.CreateBranch)
			gitRoutes.GET("/branches/:project_id/:repo_name", ctrl.ListBranches)
			gitRoutes.POST("/workflow", ctrl.GenerateGitWorkflow)
		}

		terraformRoutes := apiRoutes.Group("/terraform")
		{
			terraformRoutes.POST("/generate", ctrl.GenerateTerraform)
			terraformRoutes.GET("/modules/:cloud_provider", ctrl.GetTerraformModules)
		}

		monitoringRoutes := apiRoutes.Group("/monitoring")
		{
			monitoringRoutes.POST("/setup", ctrl.SetupMonitoring)
			monitoringRoutes.GET("/metrics/endpoints", ctrl.GetMetricsEndpoints)
		}

		orchestrationRoutes := apiRoutes.Group("/orchestration")
		{
			orchestrationRoutes.POST("/generate-complete-infra", ctrl.GenerateCompleteInfra)
			orchestrationRoutes.POST("/enqueue", ctrl.EnqueueGeneration)
			orchestrationRoutes.GET("/status/:project_id", ctrl.GetGenerationStatus)
		}
	}

	return r
}
