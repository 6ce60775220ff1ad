package categories

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type Service struct {
	categories *Repository

	logger *zap.Logger
}

func NewService(categories *Repository, logger *zap.Logger) *Service {
	return &Service{
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Category, error) {
	return s.categories.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (*Category, error) {
	category, err := s.categories.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.Int64("id", category.ID))
	return category, nil
}

func (s *Service) Update(ctx context.Context, id int64, name string) (*Category, error) {
	category := &Category{ID: id, Name: strings.TrimSpace(name)}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.Int64("id", id))
	return nil
}
