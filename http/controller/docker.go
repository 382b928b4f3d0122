package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

func (ctrl *Controller) GenerateDockerfile(c *gin.Context) {
	var req dto.DockerfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	dockerfile := generator.Dockerfile(entity.DockerImageConfig{
		BaseImage:    generator.BaseImage(req.Framework),
		Workdir:      "/app",
		Commands:     generator.BuildCommands(req.Framework, req.ServiceType),
		ExposedPorts: req.Ports,
		Environment:  req.EnvironmentVars,
	})

	ctrl.cache(c.Request.Context(), fmt.Sprintf("dockerfile:%s:%s", req.ProjectID, req.ServiceName), dockerfile)

	utils.JSON200(c, gin.H{
		"dockerfile":   dockerfile,
		"service_name": req.ServiceName,
	})
}

func (ctrl *Controller) GenerateDockerCompose(c *gin.Context) {
	var req dto.DockerComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	services := map[string]entity.DockerComposeService{}
	for _, spec := range req.Services {
		services[spec.Name] = entity.DockerComposeService{
			Image:       spec.Image,
			Build:       spec.Build,
			Ports:       spec.Ports,
			Environment: spec.Environment,
			Volumes:     spec.Volumes,
			DependsOn:   spec.DependsOn,
			Networks:    []string{"gigapress-network"},
		}
	}

	compose, err := generator.DockerCompose(entity.DockerComposeConfig{
		Services: services,
		Networks: map[string]map[string]any{
			"gigapress-network": {"driver": "bridge"},
		},
	})
	if err != nil {
		utils.JSON500(c, "Failed to generate docker-compose.yml: "+err.Error())
		return
	}

	ctrl.cache(c.Request.Context(), "docker-compose:"+req.ProjectID, compose)

	utils.JSON200(c, gin.H{
		"docker_compose": compose,
		"services_count": len(req.Services),
	})
}

func (ctrl *Controller) GenerateDockerignore(c *gin.Context) {
	var req dto.DockerignoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"dockerignore": generator.Dockerignore(req.Framework),
		"framework":    req.Framework,
	})
}
