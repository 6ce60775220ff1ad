package git

import (
	"fmt"
	"net/url"
	"strings"
)

// AuthenticatedURL embeds token as the user component of an http(s) remote.
// Any password is dropped. Other remotes (local paths, file://) are returned as is.
func AuthenticatedURL(remote, token string) (string, error) {
	if remote == "" {
		return "", ErrMissingRemote
	}
	if token == "" {
		return "", ErrMissingToken
	}

	u, err := url.Parse(remote)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return remote, nil //nolint:nilerr //not an url, used verbatim
	}

	u.User = url.User(token)
	return u.String(), nil
}

// RedactURL removes credentials so the remote can be logged.
func RedactURL(remote string) string {
	u, err := url.Parse(remote)
	if err != nil || u.User == nil {
		return remote
	}
	u.User = nil
	return u.String()
}

// RemoteIdentity returns the account and repository names of a remote.
//
// For https://github.com/acme/images.git it returns ("acme", "images").
func RemoteIdentity(remote string) (string, string, error) {
	p := remote
	if u, err := url.Parse(remote); err == nil && u.Scheme != "" {
		p = u.Path
	} else if i := strings.Index(remote, ":"); i > 0 && strings.Contains(remote[:i], "@") {
		// scp-like syntax: git@github.com:acme/images.git
		p = remote[i+1:]
	}

	p = strings.ReplaceAll(p, "\\", "/")
	segments := strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
	if len(segments) < 2 {
		return "", "", fmt.Errorf("%w: cannot derive account and repository from %q", ErrConfiguration, RedactURL(remote))
	}

	account := segments[0]
	repo := strings.TrimSuffix(segments[len(segments)-1], ".git")

	return account, repo, nil
}
