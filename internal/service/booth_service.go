package service

import (
	"context"

	"github.com/campuslab/printbooth/internal/model"
	"github.com/campuslab/printbooth/internal/pkg/validate"
	"github.com/campuslab/printbooth/internal/repo"
)

type BoothService struct {
	managers repo.BoothManagerRepository
}

func NewBoothService(managers repo.BoothManagerRepository) *BoothService {
	return &BoothService{managers: managers}
}

func (s *BoothService) Profile(ctx context.Context, id string) (*model.BoothManager, error) {
	return s.managers.GetByID(ctx, id)
}

// ReloadPaper sets the loaded paper count after an operator refill. The
// count is bounded by the booth's capacity and can never go negative.
func (s *BoothService) ReloadPaper(ctx context.Context, id string, paperAvailable int) (*model.BoothManager, error) {
	if paperAvailable < 0 {
		return nil, validate.Errors{{Field: "paperAvailable", Reason: "Loaded paper cannot be negative or exceed capacity"}}
	}
	m, err := s.managers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paperAvailable > m.PaperCapacity {
		return nil, validate.Errors{{Field: "paperAvailable", Reason: "Loaded paper cannot be negative or exceed capacity"}}
	}
	return s.managers.UpdatePaper(ctx, id, paperAvailable)
}

func (s *BoothService) SetActive(ctx context.Context, id string, active bool) (*model.BoothManager, error) {
	return s.managers.SetActive(ctx, id, active)
}
