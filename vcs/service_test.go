package vcs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/entity"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{EnvConfig: &config.EnvConfig{}}
	cfg.EnvConfig.Git.ReposDir = t.TempDir()
	cfg.EnvConfig.Git.DefaultBranch = "main"
	cfg.EnvConfig.Git.AuthorName = "GigaPress Bot"
	cfg.EnvConfig.Git.AuthorEmail = "bot@gigapress.io"
	return NewService(cfg)
}

func TestInitRepository(t *testing.T) {
	svc := newTestService(t)

	repo, err := svc.InitRepository("proj-1", "my-app", "test project")
	if err != nil {
		t.Fatalf("InitRepository: %v", err)
	}
	if repo.DefaultBranch != "main" {
		t.Errorf("default branch = %q", repo.DefaultBranch)
	}
	if _, err := os.Stat(filepath.Join(svc.reposDir, "proj-1", "my-app", ".git")); err != nil {
		t.Fatalf("repository not created: %v", err)
	}

	// Re-initializing must not fail.
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("re-init: %v", err)
	}
}

func TestInitRepositoryPerRepoPaths(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.InitRepository("proj-1", "api", ""); err != nil {
		t.Fatalf("InitRepository api: %v", err)
	}
	if _, err := svc.InitRepository("proj-1", "web", ""); err != nil {
		t.Fatalf("InitRepository web: %v", err)
	}

	// Two repositories under one project stay independent.
	if err := svc.WriteFiles("proj-1", "api", map[string]string{"main.go": "package main\n"}); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if _, err := os.Stat(filepath.Join(svc.reposDir, "proj-1", "api", "main.go")); err != nil {
		t.Fatalf("file missing from api repo: %v", err)
	}
	if _, err := os.Stat(filepath.Join(svc.reposDir, "proj-1", "web", "main.go")); err == nil {
		t.Fatal("file leaked into web repo")
	}

	if _, err := svc.Commit("proj-1", "api", entity.GitCommit{Message: "initial"}); err != nil {
		t.Fatalf("Commit api: %v", err)
	}
	if _, err := svc.Commit("proj-1", "web", entity.GitCommit{Message: "initial"}); err != nil {
		t.Fatalf("Commit web: %v", err)
	}
}

func TestWriteFilesAndCommit(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("InitRepository: %v", err)
	}

	files := map[string]string{
		"Dockerfile":                 "FROM node:18-alpine\n",
		".github/workflows/main.yml": "name: CI\n",
	}
	if err := svc.WriteFiles("proj-1", "my-app", files); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(svc.reposDir, "proj-1", "my-app", ".github", "workflows", "main.yml"))
	if err != nil {
		t.Fatalf("nested file not written: %v", err)
	}
	if string(body) != "name: CI\n" {
		t.Errorf("unexpected content: %q", body)
	}

	hash, err := svc.Commit("proj-1", "my-app", entity.GitCommit{Message: "Add infrastructure configurations"})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(hash) != 40 {
		t.Errorf("unexpected commit hash: %q", hash)
	}
}

func TestCommitSelectiveStaging(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("InitRepository: %v", err)
	}
	files := map[string]string{
		"staged.txt":   "in\n",
		"unstaged.txt": "out\n",
	}
	if err := svc.WriteFiles("proj-1", "my-app", files); err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}

	_, err := svc.Commit("proj-1", "my-app", entity.GitCommit{
		Message: "partial",
		Files:   []string{"staged.txt"},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// The unlisted file must remain untracked after the commit.
	repo, err := git.PlainOpen(filepath.Join(svc.reposDir, "proj-1", "my-app"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	status, err := wt.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if code := status.File("unstaged.txt").Worktree; code != git.Untracked {
		t.Errorf("unstaged.txt worktree status = %c, want untracked", code)
	}
	if code := status.File("staged.txt").Worktree; code != git.Unmodified {
		t.Errorf("staged.txt worktree status = %c, want unmodified", code)
	}
}

func TestCommitUsesConfiguredAuthor(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("InitRepository: %v", err)
	}

	// An empty worktree still commits.
	if _, err := svc.Commit("proj-1", "my-app", entity.GitCommit{Message: "initial"}); err != nil {
		t.Fatalf("empty commit: %v", err)
	}
}

func TestCommitMissingRepository(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Commit("nope", "ghost", entity.GitCommit{Message: "x"}); err != ErrRepositoryNotFound {
		t.Fatalf("err = %v, want ErrRepositoryNotFound", err)
	}
	if err := svc.WriteFiles("nope", "ghost", map[string]string{"a": "b"}); err != ErrRepositoryNotFound {
		t.Fatalf("err = %v, want ErrRepositoryNotFound", err)
	}
}

func TestBranches(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("InitRepository: %v", err)
	}
	if _, err := svc.Commit("proj-1", "my-app", entity.GitCommit{Message: "initial"}); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := svc.CreateBranch("proj-1", "my-app", entity.GitBranch{Name: "develop"}); err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}

	names, err := svc.Branches("proj-1", "my-app")
	if err != nil {
		t.Fatalf("Branches: %v", err)
	}
	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	if !found["main"] || !found["develop"] {
		t.Errorf("branches = %v, want main and develop", names)
	}
}

func TestGitignoreTemplates(t *testing.T) {
	if !strings.Contains(GitignoreTemplate("node"), "node_modules/") {
		t.Error("node template missing node_modules")
	}
	if !strings.Contains(GitignoreTemplate("python"), "__pycache__/") {
		t.Error("python template missing __pycache__")
	}
	if !strings.Contains(GitignoreTemplate("unknown"), ".env") {
		t.Error("fallback template missing .env")
	}
}

func TestCreateReadme(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.InitRepository("proj-1", "my-app", ""); err != nil {
		t.Fatalf("InitRepository: %v", err)
	}
	err := svc.CreateReadme("proj-1", "my-app", entity.ReadmeContent{
		ProjectName: "my-app",
		Description: "An online shop",
		License:     "MIT",
	})
	if err != nil {
		t.Fatalf("CreateReadme: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(svc.reposDir, "proj-1", "my-app", "README.md"))
	if err != nil {
		t.Fatalf("README not written: %v", err)
	}
	for _, want := range []string{"# my-app", "An online shop", "## License", "MIT"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("README missing %q", want)
		}
	}
}
