package assets_test

import (
	"testing"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/stretchr/testify/assert"
)

//nolint:gochecknoglobals //test fixture
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestExtension(t *testing.T) {
	tests := []struct {
		name    string
		hint    string
		content []byte
		want    string
	}{
		{name: "png", hint: "image/png", want: "png"},
		{name: "jpeg", hint: "image/jpeg", want: "jpg"},
		{name: "with parameters", hint: "Image/PNG; charset=binary", want: "png"},
		{name: "unknown hint", hint: "image/x-unknown", content: pngHeader, want: assets.FallbackExtension},
		{name: "sniffed", hint: "", content: pngHeader, want: "png"},
		{name: "octet stream is sniffed", hint: "application/octet-stream", content: pngHeader, want: "png"},
		{name: "nothing known", hint: "", content: nil, want: assets.FallbackExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.Extension(tt.hint, tt.content))
		})
	}
}
