package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakerypro/bakerypro/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
)

// Repository is the asset index: committed files keyed by path with a URL lookup.
type Repository struct {
	db      *badger.DB
	storage *badgerfx.Repository[*assetModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
		storage: badgerfx.NewRepository(func() *assetModel {
			return new(assetModel)
		}),
	}
}

func (r *Repository) Save(_ context.Context, asset *Asset) error {
	model := newAssetModel(asset)

	err := r.db.Update(func(txn *badger.Txn) error {
		return r.storage.Upsert(txn, model)
	})
	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return nil
}

func (r *Repository) GetByPath(_ context.Context, relPath string) (*Asset, error) {
	return r.view(func(txn *badger.Txn) (*assetModel, error) {
		return r.storage.Read(txn, pathKey(relPath))
	})
}

func (r *Repository) GetByURL(_ context.Context, url string) (*Asset, error) {
	return r.view(func(txn *badger.Txn) (*assetModel, error) {
		return r.storage.ReadByIndex(txn, urlKey(url))
	})
}

func (r *Repository) Delete(_ context.Context, relPath string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return r.storage.Delete(txn, pathKey(relPath))
	})
	if errors.Is(err, badgerfx.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

func (r *Repository) view(read func(txn *badger.Txn) (*assetModel, error)) (*Asset, error) {
	var model *assetModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := read(txn)
		if err == nil {
			model = found
		}
		return err
	})
	if errors.Is(err, badgerfx.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return newAsset(model), nil
}
