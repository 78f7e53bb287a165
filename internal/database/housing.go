package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"metropolitan/server/internal/models"
)

// housingColumns lists every housing_data column except id, in the order
// used by scanHousingData and housingArgs.
var housingColumns = []string{
	"census_metropolitan_area",
	"total_starts",
	"total_complete",
	"month",
	"singles_starts",
	"semis_starts",
	"row_starts",
	"apartment_starts",
	"singles_complete",
	"semis_complete",
	"row_complete",
	"apartment_complete",
}

var housingSelect = "SELECT id, " + strings.Join(housingColumns, ", ") + " FROM housing_data"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func housingCounts(h *models.HousingData) []**int {
	return []**int{
		&h.TotalStarts,
		&h.TotalComplete,
		&h.Month,
		&h.SingleStarts,
		&h.SemisStarts,
		&h.RowStarts,
		&h.ApartmentStarts,
		&h.SinglesComplete,
		&h.SemisComplete,
		&h.RowComplete,
		&h.ApartmentComplete,
	}
}

func scanHousingData(row rowScanner) (models.HousingData, error) {
	var h models.HousingData
	var censusArea sql.NullString

	counts := housingCounts(&h)
	nulls := make([]sql.NullInt64, len(counts))

	dest := make([]interface{}, 0, len(counts)+2)
	dest = append(dest, &h.ID, &censusArea)
	for i := range nulls {
		dest = append(dest, &nulls[i])
	}

	if err := row.Scan(dest...); err != nil {
		return h, err
	}

	if censusArea.Valid {
		h.CensusArea = censusArea.String
	}
	for i, count := range counts {
		if nulls[i].Valid {
			v := int(nulls[i].Int64)
			*count = &v
		}
	}
	return h, nil
}

func housingArgs(h *models.HousingData) []interface{} {
	args := []interface{}{h.CensusArea}
	for _, count := range housingCounts(h) {
		var v sql.NullInt64
		if *count != nil {
			v = sql.NullInt64{Int64: int64(**count), Valid: true}
		}
		args = append(args, v)
	}
	return args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// InsertHousingData stores a new row and returns it with the generated id.
// Any id already set on h is ignored.
func (d *Database) InsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	query := fmt.Sprintf(
		"INSERT INTO housing_data (%s) VALUES (%s)",
		strings.Join(housingColumns, ", "),
		placeholders(len(housingColumns)),
	)

	result, err := d.db.ExecContext(ctx, query, housingArgs(h)...)
	if err != nil {
		return nil, wrapWriteErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, wrapWriteErr(err)
	}

	stored := *h
	stored.ID = id
	return &stored, nil
}

// UpsertHousingData replaces the row with h.ID, creating it when no such row
// exists. A zero id is a plain insert.
func (d *Database) UpsertHousingData(ctx context.Context, h *models.HousingData) (*models.HousingData, error) {
	if h.ID == 0 {
		return d.InsertHousingData(ctx, h)
	}

	updates := make([]string, len(housingColumns))
	for i, column := range housingColumns {
		updates[i] = fmt.Sprintf("%s = excluded.%s", column, column)
	}

	query := fmt.Sprintf(
		"INSERT INTO housing_data (id, %s) VALUES (?, %s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(housingColumns, ", "),
		placeholders(len(housingColumns)),
		strings.Join(updates, ", "),
	)

	args := append([]interface{}{h.ID}, housingArgs(h)...)
	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return nil, wrapWriteErr(err)
	}

	stored := *h
	return &stored, nil
}

func (d *Database) GetHousingData(ctx context.Context, id int64) (*models.HousingData, error) {
	row := d.db.QueryRowContext(ctx, housingSelect+" WHERE id = ?", id)
	h, err := scanHousingData(row)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &h, nil
}

// DeleteHousingData removes the row with the given id, returning
// models.ErrNotFound when nothing was deleted.
func (d *Database) DeleteHousingData(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, "DELETE FROM housing_data WHERE id = ?", id)
	if err != nil {
		return wrapWriteErr(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapWriteErr(err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *Database) ListHousingData(ctx context.Context, filter models.HousingFilter) ([]models.HousingData, error) {
	query := housingSelect
	var conditions []string
	var args []interface{}

	if filter.TotalStarts != nil {
		conditions = append(conditions, "total_starts = ?")
		args = append(args, *filter.TotalStarts)
	}
	if filter.TotalComplete != nil {
		conditions = append(conditions, "total_complete = ?")
		args = append(args, *filter.TotalComplete)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query housing data: %w", err)
	}
	defer rows.Close()

	data := make([]models.HousingData, 0)
	for rows.Next() {
		h, err := scanHousingData(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan housing data: %w", err)
		}
		data = append(data, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating housing data: %w", err)
	}

	return data, nil
}

func (d *Database) CountHousingData(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM housing_data").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count housing data: %w", err)
	}
	return count, nil
}

// SumTotalStartsByCensusArea adds up total_starts for one census area. An area
// without rows sums to zero.
func (d *Database) SumTotalStartsByCensusArea(ctx context.Context, censusArea string) (int64, error) {
	return d.sumByCensusArea(ctx, "total_starts", censusArea)
}

// SumTotalCompleteByCensusArea adds up total_complete for one census area.
func (d *Database) SumTotalCompleteByCensusArea(ctx context.Context, censusArea string) (int64, error) {
	return d.sumByCensusArea(ctx, "total_complete", censusArea)
}

// column is always one of the two constants above, never user input.
func (d *Database) sumByCensusArea(ctx context.Context, column, censusArea string) (int64, error) {
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%s), 0) FROM housing_data WHERE census_metropolitan_area = ?",
		column,
	)

	var total int64
	if err := d.db.QueryRowContext(ctx, query, censusArea).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum %s for %q: %w", column, censusArea, err)
	}
	return total, nil
}
