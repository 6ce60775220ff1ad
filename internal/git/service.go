package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	dirPerm = 0o755

	fallbackName  = "bakerypro"
	fallbackEmail = "bakerypro@localhost"
)

// Service owns the image repository working copy.
//
// All mutating operations are serialized by a single mutex, so concurrent
// uploads never interleave their write, stage and commit steps.
type Service struct {
	config Config

	mu     sync.Mutex
	handle Handle

	logger *zap.Logger
}

// NewService creates a new Service.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		handle: Handle{
			Path:   config.Dir,
			Branch: config.branch(),
			Source: StateUninitialized,
			State:  StateUninitialized,
		},
		logger: logger,
	}
}

// Handle returns the state reached by the last Ensure call.
func (s *Service) Handle() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle
}

// Ensure makes sure the working copy exists, is a repository and is on the
// configured branch. Only missing credentials abort the sequence; every other
// failure is logged and the next step is attempted.
func (s *Service) Ensure(ctx context.Context) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.ensure(ctx); err != nil {
		return Handle{}, err
	}

	return s.handle, nil
}

// Do runs fn with exclusive access to an ensured working copy.
func (s *Service) Do(ctx context.Context, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := s.ensure(ctx)
	if err != nil {
		return err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	return fn(&Session{
		ctx:      ctx,
		repo:     repo,
		worktree: worktree,
		service:  s,
	})
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

func (s *Service) ensure(ctx context.Context) (repo *git.Repository, err error) {
	started := time.Now()
	defer func() {
		operationDuration.WithLabelValues("ensure", outcome(err)).Observe(time.Since(started).Seconds())
	}()

	authURL, err := AuthenticatedURL(s.config.RemoteURL, s.config.Token)
	if err != nil {
		s.logger.Error("image repository is not configured", zap.Error(err))
		return nil, err
	}

	branch := s.config.branch()
	logger := s.logger.With(
		zap.String("path", s.config.Dir),
		zap.String("remote", RedactURL(s.config.RemoteURL)),
		zap.String("branch", branch),
	)

	if mkErr := os.MkdirAll(filepath.Dir(s.config.Dir), dirPerm); mkErr != nil {
		logger.Error("failed to create parent directory", zap.Error(mkErr))
		return nil, fmt.Errorf("failed to create parent directory: %w", mkErr)
	}

	repo, source, err := s.open(ctx, authURL, logger)
	if err != nil {
		return nil, err
	}
	s.handle.Source = source
	s.handle.State = source

	s.configureIdentity(repo, logger)

	worktree, err := repo.Worktree()
	if err != nil {
		logger.Error("failed to get worktree", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	s.checkoutBranch(ctx, repo, worktree, branch, logger)
	s.initialCommitIfEmpty(worktree, logger)
	s.publish(ctx, repo, branch, logger)

	s.handle.State = StateBranchReady
	s.handle.Head = ""
	if head, headErr := repo.Reference(plumbing.NewBranchReferenceName(branch), true); headErr == nil {
		s.handle.Head = head.Hash().String()
	}

	logger.Debug("image repository ready",
		zap.String("source", string(source)),
		zap.String("head", s.handle.Head))

	return repo, nil
}

// open clones, initializes or opens the working copy.
func (s *Service) open(ctx context.Context, authURL string, logger *zap.Logger) (*git.Repository, State, error) {
	dir := s.config.Dir

	_, statErr := os.Stat(dir)
	switch {
	case errors.Is(statErr, os.ErrNotExist):
		repo, err := git.PlainCloneContext(ctx, dir, &git.CloneOptions{
			URL:        authURL,
			RemoteName: RemoteName,
		})
		if err == nil {
			logger.Info("image repository cloned")
			return repo, StateCloned, nil
		}

		logger.Warn("clone failed, initializing empty repository", zap.Error(err))
		// A failed clone can leave a partial .git behind, the directory did not exist before.
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			return nil, StateUninitialized, fmt.Errorf("failed to clean up after clone: %w", rmErr)
		}
		if mkErr := os.MkdirAll(dir, dirPerm); mkErr != nil {
			return nil, StateUninitialized, fmt.Errorf("failed to create repository directory: %w", mkErr)
		}

		repo, err = s.initialize(dir, authURL, logger)
		return repo, StateInitialized, err
	case statErr != nil:
		return nil, StateUninitialized, fmt.Errorf("failed to stat repository directory: %w", statErr)
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Warn("directory is not a repository, initializing in place")
		repo, err = s.initialize(dir, authURL, logger)
		return repo, StateInitialized, err
	}
	if err != nil {
		logger.Error("failed to open repository", zap.Error(err))
		return nil, StateUninitialized, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	s.registerOrigin(repo, authURL, logger)

	return repo, StateOpened, nil
}

func (s *Service) initialize(dir, authURL string, logger *zap.Logger) (*git.Repository, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		logger.Error("failed to initialize repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	s.registerOrigin(repo, authURL, logger)

	return repo, nil
}

func (s *Service) registerOrigin(repo *git.Repository, authURL string, logger *zap.Logger) {
	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: RemoteName,
		URLs: []string{authURL},
	})
	if err != nil && !errors.Is(err, git.ErrRemoteExists) {
		logger.Warn("failed to register origin", zap.Error(err))
	}
}

// configureIdentity writes user.name and user.email to the working copy config only.
func (s *Service) configureIdentity(repo *git.Repository, logger *zap.Logger) {
	identity := s.config.Identity
	if identity.Name == "" && identity.Email == "" {
		return
	}

	cfg, err := repo.Config()
	if err != nil {
		logger.Warn("failed to read repository config", zap.Error(err))
		return
	}

	if identity.Name != "" {
		cfg.User.Name = identity.Name
	}
	if identity.Email != "" {
		cfg.User.Email = identity.Email
	}

	if setErr := repo.SetConfig(cfg); setErr != nil {
		logger.Warn("failed to write repository identity", zap.Error(setErr))
	}
}

func (s *Service) checkoutBranch(
	ctx context.Context,
	repo *git.Repository,
	worktree *git.Worktree,
	branch string,
	logger *zap.Logger,
) {
	err := repo.FetchContext(ctx, &git.FetchOptions{RemoteName: RemoteName})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Warn("fetch failed", zap.Error(err))
	}

	local := plumbing.NewBranchReferenceName(branch)
	remote := plumbing.NewRemoteReferenceName(RemoteName, branch)

	head, headErr := repo.Head()
	remoteRef, remoteErr := repo.Reference(remote, true)

	switch {
	case headErr == nil && head.Name() == local:
		// already on the branch
	case hasReference(repo, local):
		if coErr := worktree.Checkout(&git.CheckoutOptions{Branch: local}); coErr != nil {
			logger.Warn("failed to checkout branch", zap.Error(coErr))
		}
	case remoteErr == nil:
		coErr := worktree.Checkout(&git.CheckoutOptions{
			Branch: local,
			Hash:   remoteRef.Hash(),
			Create: true,
			Force:  headErr != nil,
		})
		if coErr != nil {
			logger.Warn("failed to checkout remote branch", zap.Error(coErr))
		}
	default:
		s.createBranch(repo, worktree, local, headErr == nil, logger)
		return
	}

	if remoteErr != nil {
		return
	}

	pullErr := worktree.PullContext(ctx, &git.PullOptions{
		RemoteName:    RemoteName,
		ReferenceName: local,
		SingleBranch:  true,
	})
	if pullErr != nil && !errors.Is(pullErr, git.NoErrAlreadyUpToDate) {
		logger.Warn("pull failed", zap.Error(pullErr))
	}
}

// createBranch creates the branch locally. An unborn repository just points HEAD at it.
func (s *Service) createBranch(
	repo *git.Repository,
	worktree *git.Worktree,
	local plumbing.ReferenceName,
	hasHead bool,
	logger *zap.Logger,
) {
	logger.Info("branch not found, creating it")

	if hasHead {
		if err := worktree.Checkout(&git.CheckoutOptions{Branch: local, Create: true}); err != nil {
			logger.Warn("failed to create branch", zap.Error(err))
		}
		return
	}

	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, local)); err != nil {
		logger.Warn("failed to point HEAD to branch", zap.Error(err))
	}
}

func (s *Service) initialCommitIfEmpty(worktree *git.Worktree, logger *zap.Logger) {
	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		logger.Warn("failed to list working copy", zap.Error(err))
		return
	}

	content := lo.Filter(entries, func(e os.DirEntry, _ int) bool { return e.Name() != git.GitDirName })
	if len(content) > 0 {
		return
	}

	if writeErr := os.WriteFile(filepath.Join(s.config.Dir, placeholderFile), nil, filePerm); writeErr != nil {
		logger.Warn("failed to write placeholder", zap.Error(writeErr))
		return
	}

	if _, addErr := worktree.Add(placeholderFile); addErr != nil {
		logger.Warn("failed to stage placeholder", zap.Error(addErr))
		return
	}

	if _, commitErr := s.commit(worktree, initialMessage); commitErr != nil {
		logger.Warn("failed to create initial commit", zap.Error(commitErr))
		return
	}

	logger.Info("initial commit created")
}

// publish pushes the branch and records origin as its upstream.
func (s *Service) publish(ctx context.Context, repo *git.Repository, branch string, logger *zap.Logger) {
	if err := s.push(ctx, repo, branch); err != nil {
		logger.Debug("initial push skipped", zap.Error(err))
		return
	}

	err := repo.CreateBranch(&gitconfig.Branch{
		Name:   branch,
		Remote: RemoteName,
		Merge:  plumbing.NewBranchReferenceName(branch),
	})
	if err != nil && !errors.Is(err, git.ErrBranchExists) {
		logger.Warn("failed to set upstream", zap.Error(err))
	}
}

func (s *Service) push(ctx context.Context, repo *git.Repository, branch string) (err error) {
	started := time.Now()
	defer func() {
		operationDuration.WithLabelValues("push", outcome(err)).Observe(time.Since(started).Seconds())
	}()

	ref := plumbing.NewBranchReferenceName(branch)
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: RemoteName,
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(ref.String() + ":" + ref.String())},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	return nil
}

func (s *Service) commit(worktree *git.Worktree, message string) (plumbing.Hash, error) {
	hash, err := worktree.Commit(message, &git.CommitOptions{Author: s.signature()})
	if errors.Is(err, git.ErrMissingAuthor) {
		hash, err = worktree.Commit(message, &git.CommitOptions{Author: fallbackSignature()})
	}
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	return hash, nil
}

// signature returns nil when no identity is configured so the repository config decides.
func (s *Service) signature() *object.Signature {
	identity := s.config.Identity
	if identity.Name == "" || identity.Email == "" {
		return nil
	}

	return &object.Signature{
		Name:  identity.Name,
		Email: identity.Email,
		When:  time.Now(),
	}
}

// fallbackSignature is used when neither the config nor git settings name an author.
func fallbackSignature() *object.Signature {
	return &object.Signature{
		Name:  fallbackName,
		Email: fallbackEmail,
		When:  time.Now(),
	}
}

func hasReference(repo *git.Repository, name plumbing.ReferenceName) bool {
	_, err := repo.Reference(name, true)
	return err == nil
}
