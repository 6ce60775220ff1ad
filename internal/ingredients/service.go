package ingredients

import (
	"context"
	"fmt"

	"github.com/bakerypro/bakerypro/internal/assets"
	"go.uber.org/zap"
)

type Store interface {
	List(ctx context.Context) ([]Ingredient, error)
	Get(ctx context.Context, id int64) (*Ingredient, error)
	Create(ctx context.Context, ingredient *Ingredient) error
	Update(ctx context.Context, ingredient *Ingredient) error
	Delete(ctx context.Context, id int64) error
}

type ImageStore interface {
	Add(ctx context.Context, category assets.Category, content []byte, mimeHint string) (*assets.Asset, error)
	RemoveByURL(ctx context.Context, url, what string)
}

type Service struct {
	ingredients Store
	images      ImageStore

	logger *zap.Logger
}

func NewService(ingredients Store, images ImageStore, logger *zap.Logger) *Service {
	return &Service{
		ingredients: ingredients,
		images:      images,

		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Ingredient, error) {
	return s.ingredients.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Ingredient, error) {
	return s.ingredients.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, draft IngredientDraft, image *Image) (*Ingredient, error) {
	if image.empty() {
		return nil, ErrImageRequired
	}

	asset, err := s.images.Add(ctx, assets.CategoryIngredients, image.Content, image.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store ingredient image: %w", err)
	}

	ingredient := &Ingredient{
		IngredientDraft: draft,
		ImageURL:        asset.URL,
	}
	if createErr := s.ingredients.Create(ctx, ingredient); createErr != nil {
		s.images.RemoveByURL(ctx, asset.URL, "orphaned ingredient image")
		return nil, createErr
	}

	s.logger.Info("ingredient created", zap.Int64("id", ingredient.ID), zap.String("image", asset.Path))

	return s.ingredients.Get(ctx, ingredient.ID)
}

func (s *Service) Update(ctx context.Context, id int64, draft IngredientDraft, image *Image) (*Ingredient, error) {
	current, err := s.ingredients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredient := &Ingredient{
		IngredientDraft: draft,
		ID:              id,
		ImageURL:        current.ImageURL,
	}

	if !image.empty() {
		asset, addErr := s.images.Add(ctx, assets.CategoryIngredients, image.Content, image.ContentType)
		if addErr != nil {
			return nil, fmt.Errorf("failed to store ingredient image: %w", addErr)
		}
		ingredient.ImageURL = asset.URL
	}

	if updErr := s.ingredients.Update(ctx, ingredient); updErr != nil {
		if ingredient.ImageURL != current.ImageURL {
			s.images.RemoveByURL(ctx, ingredient.ImageURL, "orphaned ingredient image")
		}
		return nil, updErr
	}

	if ingredient.ImageURL != current.ImageURL {
		s.images.RemoveByURL(ctx, current.ImageURL, "ingredient old image")
	}

	return s.ingredients.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.ingredients.Get(ctx, id)
	if err != nil {
		return err
	}

	if delErr := s.ingredients.Delete(ctx, id); delErr != nil {
		return delErr
	}

	s.images.RemoveByURL(ctx, current.ImageURL, "ingredient image")
	s.logger.Info("ingredient deleted", zap.Int64("id", id))

	return nil
}
