package git

import "time"

type IdentityConfig struct {
	Name  string
	Email string
}

type Config struct {
	// Dir is the local working copy path.
	Dir string
	// RemoteURL is the canonical remote, e.g. https://github.com/acme/images.git
	RemoteURL string
	// Token is embedded as the credential component of http(s) remotes.
	Token  string
	Branch string

	Identity IdentityConfig

	// Timeout bounds every Ensure/Do call; zero leaves the caller's deadline alone.
	Timeout time.Duration
}

func (c Config) Validate() error {
	if c.RemoteURL == "" {
		return ErrMissingRemote
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

func (c Config) branch() string {
	if c.Branch == "" {
		return DefaultBranch
	}
	return c.Branch
}
