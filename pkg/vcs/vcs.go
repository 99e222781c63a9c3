package vcs

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
)

// ChangedFiles returns the worktree-relative paths of files with
// uncommitted changes in the repository at repoPath, sorted. Deleted files
// are excluded; there is nothing to format.
func ChangedFiles(repoPath string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", repoPath, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	var changed []string
	for path, fileStatus := range status {
		if fileStatus.Worktree == git.Deleted || fileStatus.Staging == git.Deleted {
			continue
		}
		if fileStatus.Worktree == git.Unmodified && fileStatus.Staging == git.Unmodified {
			continue
		}
		changed = append(changed, filepath.FromSlash(path))
	}

	sort.Strings(changed)
	return changed, nil
}
