package recipes

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	recipes *Repository

	logger *zap.Logger
}

func NewService(recipes *Repository, logger *zap.Logger) *Service {
	return &Service{
		recipes: recipes,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context, productID int64) ([]Line, error) {
	return s.recipes.ListByProduct(ctx, productID)
}

func (s *Service) Add(ctx context.Context, draft LineDraft) (int64, error) {
	id, err := s.recipes.Add(ctx, draft)
	if err != nil {
		return 0, err
	}

	s.logger.Info("recipe line added",
		zap.Int64("product_id", draft.ProductID),
		zap.Int64("ingredient_id", draft.IngredientID),
	)
	return id, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.recipes.Delete(ctx, id)
}
