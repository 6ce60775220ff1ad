package batches

import "context"

type Service struct {
	batches *Repository
}

func NewService(batches *Repository) *Service {
	return &Service{
		batches: batches,
	}
}

func (s *Service) List(ctx context.Context) ([]Batch, error) {
	return s.batches.List(ctx)
}
