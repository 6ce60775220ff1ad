package assets

const DefaultRawBaseURL = "https://raw.githubusercontent.com"

type Config struct {
	// RawBaseURL serves raw file content, account/repo/branch/path are appended.
	RawBaseURL string
	RemoteURL  string
	Branch     string
}
