package dto

type GitInitRequest struct {
	ProjectID            string `json:"project_id" binding:"required"`
	RepoName             string `json:"repo_name" binding:"required"`
	GitignoreTemplate    string `json:"gitignore_template"`
	IncludeReadme        bool   `json:"include_readme"`
	License              string `json:"license"`
	InitialCommitMessage string `json:"initial_commit_message"`
}

type GitCommitRequest struct {
	ProjectID string   `json:"project_id" binding:"required"`
	RepoName  string   `json:"repo_name" binding:"required"`
	Message   string   `json:"message" binding:"required"`
	Files     []string `json:"files"`
}

type GitBranchRequest struct {
	ProjectID  string `json:"project_id" binding:"required"`
	RepoName   string `json:"repo_name" binding:"required"`
	Name       string `json:"name" binding:"required"`
	FromBranch string `json:"from_branch"`
}

type GitWorkflowRequest struct {
	ProjectID    string `json:"project_id" binding:"required"`
	WorkflowType string `json:"workflow_type"`
}
