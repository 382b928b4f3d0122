package controller

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/generator"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
)

var pipelineTemplates = map[string][]string{
	"github-actions": {
		"node-build-deploy",
		"java-gradle-build",
		"python-test-deploy",
		"docker-build-push",
	},
	"jenkins": {
		"declarative-pipeline",
		"scripted-pipeline",
		"multibranch-pipeline",
	},
	"gitlab-ci": {
		"docker-build",
		"kubernetes-deploy",
		"terraform-apply",
	},
}

func (ctrl *Controller) GeneratePipeline(c *gin.Context) {
	var req dto.CICDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	var pipeline, filename string
	var err error

	switch req.PipelineType {
	case "github-actions":
		serviceType, framework := "backend", "express"
		if len(req.BuildSteps) > 0 {
			if req.BuildSteps[0].Type != "" {
				serviceType = req.BuildSteps[0].Type
			}
			if req.BuildSteps[0].Framework != "" {
				framework = req.BuildSteps[0].Framework
			}
		}
		pipeline, err = generator.GitHubActions(entity.GitHubActionsConfig{
			Name: fmt.Sprintf("%s CI/CD", req.ProjectID),
			Triggers: map[string]any{
				"push":         map[string]any{"branches": []string{"main", "develop"}},
				"pull_request": map[string]any{"branches": []string{"main"}},
			},
			Jobs: generator.BuildWorkflow(serviceType, framework),
		})
		filename = ".github/workflows/main.yml"

	case "jenkins":
		stages := make([]entity.JenkinsStage, 0, len(req.BuildSteps))
		for _, step := range req.BuildSteps {
			name := step.Name
			if name == "" {
				name = "Build"
			}
			stages = append(stages, entity.JenkinsStage{Name: name, Steps: step.Commands})
		}
		pipeline = generator.JenkinsPipeline(entity.JenkinsConfig{
			PipelineName: req.ProjectID,
			Stages:       stages,
			Environment:  map[string]string{"PROJECT_ID": req.ProjectID},
		})
		filename = "Jenkinsfile"

	case "gitlab-ci":
		jobs := map[string]any{}
		for i, step := range req.BuildSteps {
			jobs[fmt.Sprintf("build-%d", i)] = map[string]any{
				"stage":  "build",
				"script": step.Commands,
			}
		}
		pipeline, err = generator.GitLabCI(entity.GitLabCIConfig{
			Stages:    []string{"build", "test", "deploy"},
			Variables: map[string]string{"PROJECT_ID": req.ProjectID},
			Jobs:      jobs,
		})
		filename = ".gitlab-ci.yml"
	}
	if err != nil {
		utils.JSON500(c, "Failed to generate pipeline: "+err.Error())
		return
	}

	ctrl.cache(c.Request.Context(), fmt.Sprintf("cicd:%s:%s", req.ProjectID, req.PipelineType), pipeline)

	utils.JSON200(c, gin.H{
		"pipeline": pipeline,
		"filename": filename,
		"type":     req.PipelineType,
	})
}

func (ctrl *Controller) GetPipelineTemplates(c *gin.Context) {
	pipelineType := c.Param("type")
	utils.JSON200(c, gin.H{
		"templates": pipelineTemplates[pipelineType],
		"type":      pipelineType,
	})
}
