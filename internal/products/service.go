package products

import (
	"context"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/assets"
	"go.uber.org/zap"
)

type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
}

type ImageStore interface {
	Add(ctx context.Context, category assets.Category, content []byte, mimeHint string) (*assets.Asset, error)
	RemoveByURL(ctx context.Context, url, what string)
}

type Service struct {
	products Store
	images   ImageStore

	logger *zap.Logger
}

func NewService(products Store, images ImageStore, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		images:   images,

		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.products.Get(ctx, id)
}

// Create commits the image first and stores its public URL on the new row.
func (s *Service) Create(ctx context.Context, draft ProductDraft, image *Image) (*Product, error) {
	if image.empty() {
		return nil, ErrImageRequired
	}

	asset, err := s.images.Add(ctx, assets.CategoryProducts, image.Content, image.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store product image: %w", err)
	}

	product := &Product{
		ProductDraft: draft,
		ImageURL:     asset.URL,
	}
	if createErr := s.products.Create(ctx, product); createErr != nil {
		s.images.RemoveByURL(ctx, asset.URL, "orphaned product image")
		return nil, createErr
	}

	s.logger.Info("product created", zap.Int64("id", product.ID), zap.String("image", asset.Path))

	return s.products.Get(ctx, product.ID)
}

// Update replaces the fields and, when image is set, the photo.
// The previous photo is removed only after the row points at the new one.
func (s *Service) Update(ctx context.Context, id int64, draft ProductDraft, image *Image) (*Product, error) {
	current, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &Product{
		ProductDraft: draft,
		ID:           id,
		ImageURL:     current.ImageURL,
	}

	if !image.empty() {
		asset, addErr := s.images.Add(ctx, assets.CategoryProducts, image.Content, image.ContentType)
		if addErr != nil {
			return nil, fmt.Errorf("failed to store product image: %w", addErr)
		}
		product.ImageURL = asset.URL
	}

	if updErr := s.products.Update(ctx, product); updErr != nil {
		if product.ImageURL != current.ImageURL {
			s.images.RemoveByURL(ctx, product.ImageURL, "orphaned product image")
		}
		return nil, updErr
	}

	if product.ImageURL != current.ImageURL {
		s.images.RemoveByURL(ctx, current.ImageURL, "product old image")
	}

	return s.products.Get(ctx, id)
}

// Delete removes recipe lines and the row, then the photo on a best effort basis.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.products.Get(ctx, id)
	if err != nil {
		return err
	}

	if delErr := s.products.Delete(ctx, id); delErr != nil {
		return delErr
	}

	s.images.RemoveByURL(ctx, current.ImageURL, "product image")
	s.logger.Info("product deleted", zap.Int64("id", id))

	return nil
}
