package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/entity"
	"github.com/kngsnwn/gigapress/http/controller/dto"
	"github.com/kngsnwn/gigapress/utils"
	"github.com/kngsnwn/gigapress/vcs"
)

var gitWorkflows = map[string]gin.H{
	"gitflow": {
		"branches": map[string]string{
			"main":      "Production-ready code",
			"develop":   "Integration branch",
			"feature/*": "New features",
			"release/*": "Release preparation",
			"hotfix/*":  "Emergency fixes",
		},
		"rules": []string{
			"Feature branches merge into develop",
			"Release branches merge into main and develop",
			"Hotfix branches merge into main and develop",
		},
	},
	"github-flow": {
		"branches": map[string]string{
			"main":      "Production-ready code",
			"feature/*": "All changes",
		},
		"rules": []string{
			"All changes through feature branches",
			"Pull requests for code review",
			"Deploy from main",
		},
	},
}

func (ctrl *Controller) publishGitEvent(c *gin.Context, publish func() error) {
	if ctrl.Infra == nil || ctrl.Infra.Produce == nil {
		return
	}
	if err := publish(); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(c.Request.Context(), "[Git] Failed to publish event: %v", err)
	}
}

func (ctrl *Controller) InitRepository(c *gin.Context) {
	var req dto.GitInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	repo, err := ctrl.VCS.InitRepository(req.ProjectID, req.RepoName, "")
	if err != nil {
		utils.JSON500(c, "Failed to initialize repository: "+err.Error())
		return
	}

	if req.GitignoreTemplate != "" {
		if err := ctrl.VCS.CreateGitignore(req.ProjectID, req.RepoName, req.GitignoreTemplate); err != nil {
			utils.JSON500(c, "Failed to create .gitignore: "+err.Error())
			return
		}
	}
	if req.IncludeReadme {
		license := req.License
		if license == "" {
			license = "MIT"
		}
		err := ctrl.VCS.CreateReadme(req.ProjectID, req.RepoName, entity.ReadmeContent{
			ProjectName: req.RepoName,
			Description: "Repository for " + req.RepoName,
			License:     license,
		})
		if err != nil {
			utils.JSON500(c, "Failed to create README: "+err.Error())
			return
		}
	}

	message := req.InitialCommitMessage
	if message == "" {
		message = "Initial commit"
	}
	if _, err := ctrl.VCS.Commit(req.ProjectID, req.RepoName, entity.GitCommit{Message: message}); err != nil {
		utils.JSON500(c, "Failed to create initial commit: "+err.Error())
		return
	}

	ctrl.publishGitEvent(c, func() error {
		return ctrl.Infra.Produce.GitEvents.PublishRepositoryInitialized(c.Request.Context(), req.ProjectID, req.RepoName)
	})

	utils.JSON200(c, gin.H{
		"project_id":     req.ProjectID,
		"repo_name":      req.RepoName,
		"default_branch": repo.DefaultBranch,
	})
}

func (ctrl *Controller) CreateCommit(c *gin.Context) {
	var req dto.GitCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	hash, err := ctrl.VCS.Commit(req.ProjectID, req.RepoName, entity.GitCommit{Message: req.Message, Files: req.Files})
	if err != nil {
		if errors.Is(err, vcs.ErrRepositoryNotFound) {
			utils.JSON404(c, "Repository not found")
			return
		}
		utils.JSON500(c, "Failed to create commit: "+err.Error())
		return
	}

	ctrl.publishGitEvent(c, func() error {
		return ctrl.Infra.Produce.GitEvents.PublishCommitCreated(c.Request.Context(), req.ProjectID, req.Message)
	})

	utils.JSON200(c, gin.H{
		"commit":  hash,
		"message": req.Message,
		"files":   req.Files,
	})
}

func (ctrl *Controller) CreateBranch(c *gin.Context) {
	var req dto.GitBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	err := ctrl.VCS.CreateBranch(req.ProjectID, req.RepoName, entity.GitBranch{Name: req.Name, FromBranch: req.FromBranch})
	if err != nil {
		if errors.Is(err, vcs.ErrRepositoryNotFound) {
			utils.JSON404(c, "Repository not found")
			return
		}
		utils.JSON500(c, "Failed to create branch: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"branch_name": req.Name,
		"from_branch": req.FromBranch,
	})
}

func (ctrl *Controller) ListBranches(c *gin.Context) {
	projectID := c.Param("project_id")
	repoName := c.Param("repo_name")

	branches, err := ctrl.VCS.Branches(projectID, repoName)
	if err != nil {
		if errors.Is(err, vcs.ErrRepositoryNotFound) {
			utils.JSON404(c, "Repository not found")
			return
		}
		utils.JSON500(c, "Failed to list branches: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"repo_name": repoName,
		"branches":  branches,
		"total":     len(branches),
	})
}

func (ctrl *Controller) GenerateGitWorkflow(c *gin.Context) {
	var req dto.GitWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request: "+err.Error())
		return
	}

	workflowType := req.WorkflowType
	workflow, ok := gitWorkflows[workflowType]
	if !ok {
		workflowType = "gitflow"
		workflow = gitWorkflows[workflowType]
	}

	utils.JSON200(c, gin.H{
		"workflow": workflow,
		"type":     workflowType,
	})
}
