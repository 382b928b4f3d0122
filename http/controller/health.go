package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/utils"
)

func (ctrl *Controller) HealthCheck(c *gin.Context) {
	dependencies := gin.H{}
	if ctrl.Infra != nil {
		status := func(connected bool) string {
			if connected {
				return "connected"
			}
			return "disconnected"
		}
		dependencies["redis"] = status(ctrl.Infra.Redis != nil)
		dependencies["postgres"] = status(ctrl.Infra.Postgres != nil)
		dependencies["rabbitmq"] = status(ctrl.Infra.RabbitMQ != nil)
		dependencies["minio"] = status(ctrl.Infra.Minio != nil)
	}

	utils.JSON200(c, gin.H{
		"service":      ctrl.Config.EnvConfig.Service.Name,
		"status":       "healthy",
		"version":      "1.0.0",
		"uptime":       time.Since(ctrl.startTime).Seconds(),
		"dependencies": dependencies,
	})
}

func (ctrl *Controller) ReadinessCheck(c *gin.Context) {
	c.JSON(200, gin.H{"ready": true})
}

func (ctrl *Controller) LivenessCheck(c *gin.Context) {
	c.JSON(200, gin.H{"alive": true})
}
