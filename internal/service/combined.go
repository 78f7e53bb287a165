package service

import (
	"context"
	"fmt"

	"metropolitan/server/internal/models"
)

type StartsAggregator interface {
	TotalStartsByArea(ctx context.Context, censusArea string) (int64, error)
}

type LabourLookup interface {
	Get(ctx context.Context, id int64) (*models.LabourData, error)
}

// CombinedService joins a census area's housing starts with one labour record.
// The two reads are independent and may see different snapshots.
type CombinedService struct {
	housing StartsAggregator
	labour  LabourLookup
}

func NewCombinedService(housing StartsAggregator, labour LabourLookup) *CombinedService {
	return &CombinedService{housing: housing, labour: labour}
}

// Combine fails as a whole when the labour record is missing. A census area
// without housing rows contributes zero starts.
func (s *CombinedService) Combine(ctx context.Context, censusArea string, labourID int64) (*models.CombinedData, error) {
	totalStarts, err := s.housing.TotalStartsByArea(ctx, censusArea)
	if err != nil {
		return nil, fmt.Errorf("failed to sum starts for %q: %w", censusArea, err)
	}

	labourData, err := s.labour.Get(ctx, labourID)
	if err != nil {
		return nil, err
	}

	return &models.CombinedData{
		CensusArea:  censusArea,
		TotalStarts: totalStarts,
		LabourData:  labourData,
	}, nil
}
