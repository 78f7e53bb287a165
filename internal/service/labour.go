package service

import (
	"context"
	"fmt"

	"metropolitan/server/internal/models"
)

type LabourStore interface {
	GetLabourData(ctx context.Context, id int64) (*models.LabourData, error)
	ListLabourData(ctx context.Context) ([]models.LabourData, error)
}

// LabourService gives read-only access to labour market records.
type LabourService struct {
	store LabourStore
}

func NewLabourService(store LabourStore) *LabourService {
	return &LabourService{store: store}
}

func (s *LabourService) Get(ctx context.Context, id int64) (*models.LabourData, error) {
	data, err := s.store.GetLabourData(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get labour data %d: %w", id, err)
	}
	return data, nil
}

func (s *LabourService) List(ctx context.Context) ([]models.LabourData, error) {
	return s.store.ListLabourData(ctx)
}
