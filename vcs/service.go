// Package vcs manages the local Git repositories that generated
// infrastructure is committed into.
package vcs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kngsnwn/gigapress/config"
	"github.com/kngsnwn/gigapress/entity"
)

var ErrRepositoryNotFound = errors.New("repository not found")

type Service struct {
	reposDir      string
	defaultBranch string
	authorName    string
	authorEmail   string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		reposDir:      cfg.EnvConfig.Git.ReposDir,
		defaultBranch: cfg.EnvConfig.Git.DefaultBranch,
		authorName:    cfg.EnvConfig.Git.AuthorName,
		authorEmail:   cfg.EnvConfig.Git.AuthorEmail,
	}
}

// Repositories live at <repos_dir>/<project>/<repo> so one project can hold
// several repositories without collisions.
func (s *Service) repoPath(projectID, repoName string) string {
	return filepath.Join(s.reposDir, projectID, repoName)
}

// InitRepository creates a repository for the project under the configured
// repos directory. Re-initializing an existing repository is not an error;
// the existing repository is reused.
func (s *Service) InitRepository(projectID, repoName, description string) (*entity.GitRepository, error) {
	path := s.repoPath(projectID, repoName)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create repository directory: %w", err)
	}

	_, err := git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(s.defaultBranch),
		},
	})
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}

	return &entity.GitRepository{
		ProjectID:     projectID,
		RepoName:      repoName,
		DefaultBranch: s.defaultBranch,
		Description:   description,
	}, nil
}

func (s *Service) open(projectID, repoName string) (*git.Repository, error) {
	repo, err := git.PlainOpen(s.repoPath(projectID, repoName))
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// WriteFiles writes the given filename -> content map into the repository's
// working tree, creating nested directories as needed.
func (s *Service) WriteFiles(projectID, repoName string, files map[string]string) error {
	root := s.repoPath(projectID, repoName)
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return ErrRepositoryNotFound
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// CreateGitignore writes a .gitignore from the named template.
func (s *Service) CreateGitignore(projectID, repoName, template string) error {
	return s.WriteFiles(projectID, repoName, map[string]string{
		".gitignore": GitignoreTemplate(template),
	})
}

// CreateReadme writes a README.md for the repository.
func (s *Service) CreateReadme(projectID, repoName string, content entity.ReadmeContent) error {
	return s.WriteFiles(projectID, repoName, map[string]string{
		"README.md": Readme(content),
	})
}

// Commit stages the listed files, or everything in the working tree when no
// files are given, and commits. An empty working tree still produces a
// commit so generation runs always leave a history entry.
func (s *Service) Commit(projectID, repoName string, commit entity.GitCommit) (string, error) {
	repo, err := s.open(projectID, repoName)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	if len(commit.Files) > 0 {
		for _, name := range commit.Files {
			if _, err := wt.Add(filepath.FromSlash(name)); err != nil {
				return "", fmt.Errorf("failed to stage %s: %w", name, err)
			}
		}
	} else {
		if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
			return "", fmt.Errorf("failed to stage files: %w", err)
		}
	}

	name := commit.AuthorName
	if name == "" {
		name = s.authorName
	}
	email := commit.AuthorEmail
	if email == "" {
		email = s.authorEmail
	}

	hash, err := wt.Commit(commit.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: email,
			When:  time.Now(),
		},
		AllowEmptyCommits: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String(), nil
}

// CreateBranch creates a branch from the given base (the current HEAD when
// FromBranch is empty) and leaves it checked out.
func (s *Service) CreateBranch(projectID, repoName string, branch entity.GitBranch) error {
	repo, err := s.open(projectID, repoName)
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	if branch.FromBranch != "" {
		err = wt.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(branch.FromBranch),
		})
		if err != nil {
			return fmt.Errorf("failed to checkout base branch %s: %w", branch.FromBranch, err)
		}
	}

	err = wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch.Name),
		Create: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch.Name, err)
	}
	return nil
}

// Branches lists the local branch names of the repository.
func (s *Service) Branches(projectID, repoName string) ([]string, error) {
	repo, err := s.open(projectID, repoName)
	if err != nil {
		return nil, err
	}
	iter, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return names, nil
}
