package assets

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/bakerypro/bakerypro/internal/git"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service commits uploaded images to the image repository and removes them again.
type Service struct {
	git      *git.Service
	assets   *Repository
	resolver *Resolver

	logger *zap.Logger
}

func NewService(config Config, gitSvc *git.Service, assets *Repository, logger *zap.Logger) *Service {
	resolver, err := NewResolver(config)
	if err != nil {
		logger.Warn("public urls are unavailable", zap.Error(err))
	}

	return &Service{
		git:      gitSvc,
		assets:   assets,
		resolver: resolver,

		logger: logger,
	}
}

// Add writes content under the category directory with a generated name,
// commits and pushes it. Each call produces exactly one commit. When any step
// fails the working copy is rolled back to the previous head.
func (s *Service) Add(ctx context.Context, category Category, content []byte, mimeHint string) (*Asset, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}
	if s.resolver == nil {
		return nil, ErrNotConfigured
	}

	fileName := uuid.NewString() + "." + Extension(mimeHint, content)
	relPath := path.Join(string(category), fileName)
	message := fmt.Sprintf("Add %s image %s", category.Singular(), fileName)

	var result git.CommitResult
	err := s.git.Do(ctx, func(session *git.Session) error {
		base := session.Head()

		committed, err := publish(session, relPath, content, message)
		if err == nil {
			result = committed
			return nil
		}

		// nothing that failed to reach the remote may stay in the working copy
		if rbErr := session.Rollback(base, relPath); rbErr != nil {
			s.logger.Error("failed to roll back unpublished image",
				zap.String("path", relPath),
				zap.String("base", base),
				zap.Error(rbErr),
			)
		}

		return err
	})
	if err != nil {
		operationsTotal.WithLabelValues(operationAdd, outcomeFailure).Inc()
		return nil, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	operationsTotal.WithLabelValues(operationAdd, outcomeSuccess).Inc()

	asset := &Asset{
		Category:  category,
		FileName:  fileName,
		Path:      relPath,
		URL:       s.resolver.PublicURL(relPath),
		Message:   result.Message,
		Commit:    result.Hash,
		CreatedAt: time.Now(),
	}

	if saveErr := s.assets.Save(ctx, asset); saveErr != nil {
		s.logger.Warn("failed to index asset", zap.String("path", relPath), zap.Error(saveErr))
	}

	s.logger.Info("asset committed",
		zap.String("path", relPath),
		zap.String("commit", result.Hash),
	)

	return asset, nil
}

func publish(session *git.Session, relPath string, content []byte, message string) (git.CommitResult, error) {
	if err := session.WriteFile(relPath, content); err != nil {
		return git.CommitResult{}, err
	}
	if err := session.Add(relPath); err != nil {
		return git.CommitResult{}, err
	}

	committed, err := session.Commit(message)
	if err != nil {
		return git.CommitResult{}, err
	}

	if pushErr := session.Push(); pushErr != nil {
		return git.CommitResult{}, pushErr
	}

	return committed, nil
}

// Remove deletes a tracked file with a removal commit and pushes it.
// Failures are logged and never returned. Untracked paths are a no-op.
func (s *Service) Remove(ctx context.Context, relPath, message string) {
	relPath = normalize(relPath)
	if relPath == "" {
		return
	}
	if message == "" {
		message = "Remove " + relPath
	}

	logger := s.logger.With(zap.String("path", relPath))

	removed := false
	err := s.git.Do(ctx, func(session *git.Session) error {
		staged, err := session.Remove(relPath)
		if err != nil || !staged {
			return err
		}

		if _, commitErr := session.Commit(message); commitErr != nil {
			return commitErr
		}
		removed = true

		return session.Push()
	})

	switch {
	case err != nil:
		operationsTotal.WithLabelValues(operationRemove, outcomeFailure).Inc()
		logger.Warn("failed to remove asset", zap.Error(err))
	case !removed:
		operationsTotal.WithLabelValues(operationRemove, outcomeSkipped).Inc()
		logger.Debug("asset is not tracked")
	default:
		operationsTotal.WithLabelValues(operationRemove, outcomeSuccess).Inc()
		logger.Info("asset removed")
	}

	if delErr := s.assets.Delete(ctx, relPath); delErr != nil {
		logger.Warn("failed to drop asset from index", zap.Error(delErr))
	}
}

// RemoveByURL removes the file behind a public URL. What describes the file
// in the commit message, e.g. "product image". Empty URLs are ignored.
func (s *Service) RemoveByURL(ctx context.Context, url, what string) {
	if url == "" {
		return
	}

	relPath, err := s.PathOf(ctx, url)
	if err != nil {
		s.logger.Warn("failed to resolve asset path", zap.String("url", url), zap.Error(err))
		return
	}

	message := ""
	if what != "" {
		message = fmt.Sprintf("Remove %s %s", what, relPath)
	}

	s.Remove(ctx, relPath, message)
}

// PathOf finds the repository path behind url, preferring the asset index.
func (s *Service) PathOf(ctx context.Context, url string) (string, error) {
	asset, err := s.assets.GetByURL(ctx, url)
	if err == nil {
		return asset.Path, nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.Warn("failed to query asset index", zap.String("url", url), zap.Error(err))
	}

	if s.resolver == nil {
		return "", ErrNotConfigured
	}

	return s.resolver.RelativePath(url)
}
