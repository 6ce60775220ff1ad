package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/format/index"
	"go.uber.org/zap"
)

const filePerm = 0o644

// Session gives exclusive access to the working copy for the duration of Service.Do.
type Session struct {
	ctx      context.Context //nolint:containedctx //bound to a single Do call
	repo     *git.Repository
	worktree *git.Worktree
	service  *Service
}

// WriteFile writes content to relPath inside the working copy, creating directories as needed.
func (s *Session) WriteFile(relPath string, content []byte) error {
	clean, err := cleanPath(relPath)
	if err != nil {
		return err
	}

	abs := filepath.Join(s.service.config.Dir, filepath.FromSlash(clean))
	if mkErr := os.MkdirAll(filepath.Dir(abs), dirPerm); mkErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, mkErr)
	}

	if writeErr := os.WriteFile(abs, content, filePerm); writeErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, writeErr)
	}

	return nil
}

// Add stages relPath.
func (s *Session) Add(relPath string) error {
	clean, err := cleanPath(relPath)
	if err != nil {
		return err
	}

	if _, addErr := s.worktree.Add(clean); addErr != nil {
		return fmt.Errorf("failed to stage %s: %w", clean, addErr)
	}

	return nil
}

// Remove stages the removal of relPath. It reports false without error when the
// path is not tracked, in which case nothing is staged.
func (s *Session) Remove(relPath string) (bool, error) {
	clean, err := cleanPath(relPath)
	if err != nil {
		return false, err
	}

	if _, rmErr := s.worktree.Remove(clean); rmErr != nil {
		if errors.Is(rmErr, index.ErrEntryNotFound) || errors.Is(rmErr, os.ErrNotExist) {
			s.service.logger.Debug("path is not tracked, nothing to remove", zap.String("file", clean))
			return false, nil
		}
		return false, fmt.Errorf("failed to stage removal of %s: %w", clean, rmErr)
	}

	return true, nil
}

// Commit records the staged changes.
func (s *Session) Commit(message string) (CommitResult, error) {
	hash, err := s.service.commit(s.worktree, message)
	if err != nil {
		return CommitResult{}, err
	}

	return CommitResult{
		Hash:    hash.String(),
		Message: message,
	}, nil
}

// Push publishes the configured branch to origin.
func (s *Session) Push() error {
	return s.service.push(s.ctx, s.repo, s.service.config.branch())
}

// Head returns the commit the branch points to, empty for an unborn branch.
func (s *Session) Head() string {
	ref, err := s.repo.Head()
	if err != nil {
		return ""
	}

	return ref.Hash().String()
}

// Rollback moves the branch back to base and deletes relPath from the working
// copy, discarding a write, stage or commit that was never pushed.
func (s *Session) Rollback(base, relPath string) error {
	clean, err := cleanPath(relPath)
	if err != nil {
		return err
	}

	if base != "" {
		resetErr := s.worktree.Reset(&git.ResetOptions{
			Commit: plumbing.NewHash(base),
			Mode:   git.HardReset,
		})
		if resetErr != nil {
			return fmt.Errorf("failed to reset to %s: %w", base, resetErr)
		}
	} else if unbornErr := s.dropUnborn(clean); unbornErr != nil {
		return unbornErr
	}

	abs := filepath.Join(s.service.config.Dir, filepath.FromSlash(clean))
	if rmErr := os.Remove(abs); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", clean, rmErr)
	}

	return nil
}

// dropUnborn drops the first commit, if any, and the staged entry for clean.
func (s *Session) dropUnborn(clean string) error {
	if head, err := s.repo.Head(); err == nil {
		if refErr := s.repo.Storer.RemoveReference(head.Name()); refErr != nil {
			return fmt.Errorf("failed to drop %s: %w", head.Name(), refErr)
		}
	}

	if _, err := s.worktree.Remove(clean); err != nil &&
		!errors.Is(err, index.ErrEntryNotFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to unstage %s: %w", clean, err)
	}

	return nil
}

// IsClean reports whether the working copy has no staged or unstaged changes.
func (s *Session) IsClean() (bool, error) {
	status, err := s.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}

	return status.IsClean(), nil
}

// cleanPath normalizes relPath to a slash separated path inside the working copy.
func cleanPath(relPath string) (string, error) {
	p := path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	if p == "." || p == "" || path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, relPath)
	}
	if p == git.GitDirName || strings.HasPrefix(p, git.GitDirName+"/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, relPath)
	}

	return p, nil
}
