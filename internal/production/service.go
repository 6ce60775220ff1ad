package production

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	production *Repository

	logger *zap.Logger
}

func NewService(production *Repository, logger *zap.Logger) *Service {
	return &Service{
		production: production,
		logger:     logger,
	}
}

// Produce consumes ingredients for a batch. A shortage is a result, not an error.
func (s *Service) Produce(ctx context.Context, req ProduceRequest) (*ProduceResult, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	result, err := s.production.Produce(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("production run",
		zap.Int64("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
		zap.String("status", string(result.Status)),
		zap.Int("shortages", len(result.Shortages)),
	)

	return result, nil
}

func (s *Service) Refill(ctx context.Context, req RefillRequest) (*RefillResult, error) {
	if req.Qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	result, err := s.production.Refill(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ingredient refill",
		zap.Int64("ingredient_id", req.IngredientID),
		zap.Float64("qty", req.Qty),
		zap.String("status", string(result.Status)),
	)

	return result, nil
}
