package assets

import (
	"encoding/json"
	"time"

	"github.com/bakerypro/bakerypro/pkg/badgerfx"
)

const (
	prefix = "asset:"

	prefixByPath = prefix + "path:"
	prefixByURL  = prefix + "url:"
)

type assetModel struct {
	Category  Category  `json:"category"`
	FileName  string    `json:"file_name"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	Message   string    `json:"message"`
	Commit    string    `json:"commit"`
	CreatedAt time.Time `json:"created_at"`
}

func newAssetModel(asset *Asset) *assetModel {
	return &assetModel{
		Category:  asset.Category,
		FileName:  asset.FileName,
		Path:      asset.Path,
		URL:       asset.URL,
		Message:   asset.Message,
		Commit:    asset.Commit,
		CreatedAt: asset.CreatedAt,
	}
}

func newAsset(model *assetModel) *Asset {
	return &Asset{
		Category:  model.Category,
		FileName:  model.FileName,
		Path:      model.Path,
		URL:       model.URL,
		Message:   model.Message,
		Commit:    model.Commit,
		CreatedAt: model.CreatedAt,
	}
}

func pathKey(relPath string) string {
	return prefixByPath + relPath
}

func urlKey(url string) string {
	return prefixByURL + url
}

// StorageKey implements badgerfx.Entity.
func (m *assetModel) StorageKey() string {
	return pathKey(m.Path)
}

// StorageIndexes implements badgerfx.Entity.
func (m *assetModel) StorageIndexes() []string {
	return []string{urlKey(m.URL)}
}

// MarshalStorage implements badgerfx.Entity.
func (m *assetModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

// UnmarshalStorage implements badgerfx.Entity.
func (m *assetModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

var _ badgerfx.Entity = (*assetModel)(nil)
