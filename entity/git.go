package entity

type GitRepository struct {
	ProjectID     string `json:"project_id"`
	RepoName      string `json:"repo_name"`
	RemoteURL     string `json:"remote_url"`
	DefaultBranch string `json:"default_branch"`
	Description   string `json:"description"`
}

type GitCommit struct {
	Message     string   `json:"message"`
	Files       []string `json:"files"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
}

type GitBranch struct {
	Name       string `json:"name"`
	FromBranch string `json:"from_branch"`
}

type ReadmeContent struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	License     string `json:"license"`
}
