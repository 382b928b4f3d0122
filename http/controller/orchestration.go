package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

// GenerateCompleteInfra acknowledges immediately; the generation sequence
// runs in the background and is observable only through the status endpoint.
func (ctrl *Controller) GenerateCompleteInfra(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		utils.JSON400(c, "project_id is required")
		return
	}

	var req dto.OrchestrationRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	ctrl.Orchestrator.StartGeneration(projectID, req.CloudProvider, req.Region)

	utils.JSON202(c, gin.H{
		"project_id": projectID,
		"status":     "in_progress",
		"message":    "Check /status endpoint for progress",
	})
}

// EnqueueGeneration publishes the generation request to the infra request
// queue instead of running it in-process; a consumer picks it up.
func (ctrl *Controller) EnqueueGeneration(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		utils.JSON400(c, "project_id is required")
		return
	}

	var req dto.OrchestrationRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if ctrl.Infra == nil || ctrl.Infra.Produce == nil {
		utils.JSON500(c, "Request queue unavailable")
		return
	}
	err := ctrl.Infra.Produce.InfraRequests.PublishGenerationRequest(c.Request.Context(), projectID, req.CloudProvider, req.Region)
	if err != nil {
		utils.JSON500(c, "Failed to enqueue generation request: "+err.Error())
		return
	}

	utils.JSON202(c, gin.H{
		"project_id": projectID,
		"status":     "queued",
	})
}

func (ctrl *Controller) GetGenerationStatus(c *gin.Context) {
	projectID := c.Param("project_id")

	job, ok := ctrl.Orchestrator.Status(projectID)
	if !ok {
		utils.JSON404(c, "No generation job found for project")
		return
	}

	utils.JSON200(c, job)
}
