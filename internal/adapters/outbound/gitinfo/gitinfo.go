package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Git implements domain.GitInfo using go-git, so no git binary is needed.
type Git struct{}

func New() *Git {
	return &Git{}
}

func (g *Git) IsGitRepo(root string) bool {
	_, err := git.PlainOpen(root)
	return err == nil
}

// CommitHash returns the hash of HEAD for the repository at root.
func (g *Git) CommitHash(root string) (string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
