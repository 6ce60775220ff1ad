package assets

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const FallbackExtension = "jpg"

// Extension picks the file extension, without the dot, for an upload.
// The declared MIME type wins; content is sniffed only when nothing was declared.
func Extension(mimeHint string, content []byte) string {
	hint, _, _ := strings.Cut(mimeHint, ";")
	hint = strings.ToLower(strings.TrimSpace(hint))

	if hint != "" && hint != "application/octet-stream" {
		if mt := mimetype.Lookup(hint); mt != nil && mt.Extension() != "" {
			return strings.TrimPrefix(mt.Extension(), ".")
		}
		return FallbackExtension
	}

	if len(content) > 0 {
		if ext := mimetype.Detect(content).Extension(); ext != "" {
			return strings.TrimPrefix(ext, ".")
		}
	}

	return FallbackExtension
}
