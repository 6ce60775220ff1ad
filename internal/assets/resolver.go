package assets

import (
	"fmt"
	"strings"

	"github.com/bakerypro/bakerypro/internal/git"
)

// Resolver maps repository paths to public raw-content URLs and back.
type Resolver struct {
	prefix string
}

func NewResolver(config Config) (*Resolver, error) {
	account, repo, err := git.RemoteIdentity(config.RemoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to derive remote identity: %w", err)
	}

	base := strings.TrimRight(config.RawBaseURL, "/")
	if base == "" {
		base = DefaultRawBaseURL
	}

	branch := config.Branch
	if branch == "" {
		branch = git.DefaultBranch
	}

	return &Resolver{
		prefix: strings.Join([]string{base, account, repo, branch}, "/") + "/",
	}, nil
}

func (r *Resolver) PublicURL(relPath string) string {
	return r.prefix + normalize(relPath)
}

// RelativePath is the inverse of PublicURL.
func (r *Resolver) RelativePath(url string) (string, error) {
	rel, ok := strings.CutPrefix(url, r.prefix)
	if !ok || rel == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, url)
	}

	return rel, nil
}

func normalize(relPath string) string {
	return strings.TrimLeft(strings.ReplaceAll(relPath, "\\", "/"), "/")
}
