package service

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"metropolitan/server/internal/models"
)

// HousingStore is the persistence the housing service needs.
type HousingStore interface {
	InsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error)
	UpsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error)
	GetHousingData(ctx context.Context, id int64) (*models.HousingData, error)
	DeleteHousingData(ctx context.Context, id int64) error
	ListHousingData(ctx context.Context, filter models.HousingFilter) ([]models.HousingData, error)
	CountHousingData(ctx context.Context) (int64, error)
	SumTotalStartsByCensusArea(ctx context.Context, censusArea string) (int64, error)
	SumTotalCompleteByCensusArea(ctx context.Context, censusArea string) (int64, error)
}

// HousingService manages housing starts and completions records.
type HousingService struct {
	store  HousingStore
	logger *logrus.Logger
}

func newDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	return logger
}

func NewHousingService(store HousingStore, logger *logrus.Logger) *HousingService {
	if logger == nil {
		logger = newDefaultLogger()
	}
	return &HousingService{store: store, logger: logger}
}

func validateHousingData(h *models.HousingData) error {
	if h == nil {
		return fmt.Errorf("%w: missing housing data", models.ErrInvalidInput)
	}
	if h.ID < 0 {
		return fmt.Errorf("%w: negative id %d", models.ErrInvalidInput, h.ID)
	}
	if h.Month != nil && (*h.Month < 1 || *h.Month > 12) {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", models.ErrInvalidInput, *h.Month)
	}
	return nil
}

// Add stores a new record under a freshly generated id.
func (s *HousingService) Add(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	if err := validateHousingData(h); err != nil {
		return nil, err
	}

	stored, err := s.store.InsertHousingData(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("failed to add housing data: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":          stored.ID,
		"census_area": stored.CensusArea,
	}).Debug("Stored housing data")
	return stored, nil
}

func (s *HousingService) Get(ctx context.Context, id int64) (*models.HousingData, error) {
	h, err := s.store.GetHousingData(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get housing data %d: %w", id, err)
	}
	return h, nil
}

// Update replaces the record carrying h.ID, or creates it when absent.
// Concurrent updates of one id are last-write-wins.
func (s *HousingService) Update(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	if err := validateHousingData(h); err != nil {
		return nil, err
	}

	stored, err := s.store.UpsertHousingData(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("failed to update housing data: %w", err)
	}

	s.logger.WithField("id", stored.ID).Debug("Updated housing data")
	return stored, nil
}

func (s *HousingService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteHousingData(ctx, id); err != nil {
		return fmt.Errorf("failed to delete housing data %d: %w", id, err)
	}

	s.logger.WithField("id", id).Debug("Deleted housing data")
	return nil
}

func (s *HousingService) List(ctx context.Context, filter models.HousingFilter) ([]models.HousingData, error) {
	return s.store.ListHousingData(ctx, filter)
}

func (s *HousingService) Count(ctx context.Context) (int64, error) {
	return s.store.CountHousingData(ctx)
}

// TotalStartsByArea sums total starts for an exact, case-sensitive census
// area. An unknown area is not an error and yields 0.
func (s *HousingService) TotalStartsByArea(ctx context.Context, censusArea string) (int64, error) {
	return s.store.SumTotalStartsByCensusArea(ctx, censusArea)
}

// TotalCompleteByArea is the completions counterpart of TotalStartsByArea.
func (s *HousingService) TotalCompleteByArea(ctx context.Context, censusArea string) (int64, error) {
	return s.store.SumTotalCompleteByCensusArea(ctx, censusArea)
}
