package database

import (
	"context"
	"fmt"

	"metropolitan/server/internal/models"
)

func (r labourRow) toModel() models.LabourData {
	return models.LabourData{
		ID:                r.ID,
		Province:          r.Province,
		EducationLevel:    r.EducationLevel,
		LabourForceStatus: r.LabourForceStatus,
	}
}

func (d *Database) GetLabourData(ctx context.Context, id int64) (*models.LabourData, error) {
	var row labourRow
	if err := d.gorm.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, wrapErr(err)
	}

	data := row.toModel()
	return &data, nil
}

func (d *Database) ListLabourData(ctx context.Context) ([]models.LabourData, error) {
	var rows []labourRow
	if err := d.gorm.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query labour market data: %w", err)
	}

	data := make([]models.LabourData, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.toModel())
	}
	return data, nil
}

// InsertLabourData stores a labour record and returns it with its generated id.
// Labour data is read-only over HTTP; this is how fixtures and tooling load it.
func (d *Database) InsertLabourData(ctx context.Context, l *models.LabourData) (*models.LabourData, error) {
	row := labourRow{
		Province:          l.Province,
		EducationLevel:    l.EducationLevel,
		LabourForceStatus: l.LabourForceStatus,
	}
	if err := d.gorm.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, wrapWriteErr(err)
	}

	data := row.toModel()
	return &data, nil
}
