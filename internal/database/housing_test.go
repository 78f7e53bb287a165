package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metropolitan/server/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func setupTestDB(t *testing.T) *Database {
	db, err := NewTestDB()
	require.NoError(t, err)

	err = db.MigrateSchema()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestHousingData_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	record := &models.HousingData{
		CensusArea:        "TestArea",
		TotalStarts:       intPtr(150),
		TotalComplete:     intPtr(100),
		Month:             intPtr(3),
		SingleStarts:      intPtr(20),
		SemisStarts:       intPtr(15),
		RowStarts:         intPtr(10),
		ApartmentStarts:   intPtr(5),
		SinglesComplete:   intPtr(18),
		SemisComplete:     intPtr(14),
		RowComplete:       intPtr(9),
		ApartmentComplete: intPtr(4),
	}

	stored, err := db.InsertHousingData(ctx, record)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)

	fetched, err := db.GetHousingData(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, fetched)
}

func TestHousingData_NullCountsSurvive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stored, err := db.InsertHousingData(ctx, &models.HousingData{CensusArea: "Sparse", TotalStarts: intPtr(7)})
	require.NoError(t, err)

	fetched, err := db.GetHousingData(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, *fetched.TotalStarts)
	assert.Nil(t, fetched.TotalComplete)
	assert.Nil(t, fetched.Month)
	assert.Nil(t, fetched.ApartmentComplete)
}

func TestHousingData_GetMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetHousingData(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestHousingData_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stored, err := db.InsertHousingData(ctx, &models.HousingData{
		CensusArea:  "Toronto",
		TotalStarts: intPtr(10),
		Month:       intPtr(1),
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		record models.HousingData
	}{
		{
			name: "replace existing row",
			record: models.HousingData{
				ID:            stored.ID,
				CensusArea:    "Toronto",
				TotalStarts:   intPtr(25),
				TotalComplete: intPtr(4),
			},
		},
		{
			name: "insert row with explicit id",
			record: models.HousingData{
				ID:          4242,
				CensusArea:  "Ottawa",
				TotalStarts: intPtr(3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.record
			_, err := db.UpsertHousingData(ctx, &record)
			require.NoError(t, err)

			fetched, err := db.GetHousingData(ctx, tt.record.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.record, *fetched)
		})
	}

	count, err := db.CountHousingData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestHousingData_UpsertWithoutIDInserts(t *testing.T) {
	db := setupTestDB(t)

	stored, err := db.UpsertHousingData(context.Background(), &models.HousingData{CensusArea: "Calgary"})
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
}

func TestHousingData_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stored, err := db.InsertHousingData(ctx, &models.HousingData{CensusArea: "Halifax"})
	require.NoError(t, err)

	assert.NoError(t, db.DeleteHousingData(ctx, stored.ID))
	assert.ErrorIs(t, db.DeleteHousingData(ctx, stored.ID), models.ErrNotFound)

	_, err = db.GetHousingData(ctx, stored.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestHousingData_ListAndFilter(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	empty, err := db.ListHousingData(ctx, models.HousingFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	seed := []models.HousingData{
		{CensusArea: "TestArea", TotalStarts: intPtr(150), TotalComplete: intPtr(100), Month: intPtr(1)},
		{CensusArea: "TestArea", TotalStarts: intPtr(130), TotalComplete: intPtr(130), Month: intPtr(2)},
		{CensusArea: "OtherArea", TotalStarts: intPtr(150), TotalComplete: intPtr(60), Month: intPtr(2)},
	}
	for i := range seed {
		_, err := db.InsertHousingData(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name          string
		filter        models.HousingFilter
		expectedAreas []string
	}{
		{
			name:          "no filter",
			filter:        models.HousingFilter{},
			expectedAreas: []string{"TestArea", "TestArea", "OtherArea"},
		},
		{
			name:          "total starts",
			filter:        models.HousingFilter{TotalStarts: intPtr(150)},
			expectedAreas: []string{"TestArea", "OtherArea"},
		},
		{
			name:          "total complete",
			filter:        models.HousingFilter{TotalComplete: intPtr(130)},
			expectedAreas: []string{"TestArea"},
		},
		{
			name:          "both totals",
			filter:        models.HousingFilter{TotalStarts: intPtr(150), TotalComplete: intPtr(60)},
			expectedAreas: []string{"OtherArea"},
		},
		{
			name:          "no match",
			filter:        models.HousingFilter{TotalStarts: intPtr(1)},
			expectedAreas: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := db.ListHousingData(ctx, tt.filter)
			require.NoError(t, err)

			areas := make([]string, 0, len(data))
			for _, h := range data {
				areas = append(areas, h.CensusArea)
			}
			assert.Equal(t, tt.expectedAreas, areas)
		})
	}
}

func TestHousingData_SumsByCensusArea(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := []models.HousingData{
		{CensusArea: "TestArea", TotalStarts: intPtr(150), TotalComplete: intPtr(100)},
		{CensusArea: "TestArea", TotalStarts: intPtr(130), TotalComplete: intPtr(130)},
		{CensusArea: "TestArea"},
		{CensusArea: "testarea", TotalStarts: intPtr(999), TotalComplete: intPtr(999)},
	}
	for i := range seed {
		_, err := db.InsertHousingData(ctx, &seed[i])
		require.NoError(t, err)
	}

	starts, err := db.SumTotalStartsByCensusArea(ctx, "TestArea")
	require.NoError(t, err)
	assert.Equal(t, int64(280), starts)

	complete, err := db.SumTotalCompleteByCensusArea(ctx, "TestArea")
	require.NoError(t, err)
	assert.Equal(t, int64(230), complete)

	missing, err := db.SumTotalStartsByCensusArea(ctx, "NonExistentArea")
	require.NoError(t, err)
	assert.Zero(t, missing)
}

func TestHousingData_QueriesFailWithoutSchema(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	_, err = db.InsertHousingData(ctx, &models.HousingData{CensusArea: "Nowhere"})
	assert.ErrorIs(t, err, models.ErrWriteFailed)

	_, err = db.SumTotalStartsByCensusArea(ctx, "Nowhere")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
