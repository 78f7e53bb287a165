package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"metropolitan/server/internal/models"
)

// MockHousingStore is a mock implementation of the HousingStore interface
type MockHousingStore struct {
	mock.Mock
}

func (m *MockHousingStore) InsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	args := m.Called(ctx, h)
	stored, _ := args.Get(0).(*models.HousingData)
	return stored, args.Error(1)
}

func (m *MockHousingStore) UpsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	args := m.Called(ctx, h)
	stored, _ := args.Get(0).(*models.HousingData)
	return stored, args.Error(1)
}

func (m *MockHousingStore) GetHousingData(ctx context.Context, id int64) (*models.HousingData, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*models.HousingData)
	return h, args.Error(1)
}

func (m *MockHousingStore) DeleteHousingData(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHousingStore) ListHousingData(ctx context.Context, filter models.HousingFilter) ([]models.HousingData, error) {
	args := m.Called(ctx, filter)
	data, _ := args.Get(0).([]models.HousingData)
	return data, args.Error(1)
}

func (m *MockHousingStore) CountHousingData(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHousingStore) SumTotalStartsByCensusArea(ctx context.Context, censusArea string) (int64, error) {
	args := m.Called(ctx, censusArea)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHousingStore) SumTotalCompleteByCensusArea(ctx context.Context, censusArea string) (int64, error) {
	args := m.Called(ctx, censusArea)
	return args.Get(0).(int64), args.Error(1)
}

// MockLabourStore is a mock implementation of the LabourStore interface
type MockLabourStore struct {
	mock.Mock
}

func (m *MockLabourStore) GetLabourData(ctx context.Context, id int64) (*models.LabourData, error) {
	args := m.Called(ctx, id)
	data, _ := args.Get(0).(*models.LabourData)
	return data, args.Error(1)
}

func (m *MockLabourStore) ListLabourData(ctx context.Context) ([]models.LabourData, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]models.LabourData)
	return data, args.Error(1)
}

func intPtr(v int) *int {
	return &v
}
