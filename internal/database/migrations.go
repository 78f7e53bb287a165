package database

import "fmt"

// housingRow and labourRow describe the persisted tables. They only exist for
// schema creation and gorm lookups; handlers and services see the models types.
type housingRow struct {
	ID                int64   `gorm:"column:id;primaryKey;autoIncrement"`
	CensusArea        *string `gorm:"column:census_metropolitan_area;size:255;index:idx_housing_data_census_area"`
	Month             *int    `gorm:"column:month"`
	TotalStarts       *int    `gorm:"column:total_starts"`
	TotalComplete     *int    `gorm:"column:total_complete"`
	SinglesStarts     *int    `gorm:"column:singles_starts"`
	SemisStarts       *int    `gorm:"column:semis_starts"`
	RowStarts         *int    `gorm:"column:row_starts"`
	ApartmentStarts   *int    `gorm:"column:apartment_starts"`
	SinglesComplete   *int    `gorm:"column:singles_complete"`
	SemisComplete     *int    `gorm:"column:semis_complete"`
	RowComplete       *int    `gorm:"column:row_complete"`
	ApartmentComplete *int    `gorm:"column:apartment_complete"`
}

func (housingRow) TableName() string {
	return "housing_data"
}

type labourRow struct {
	ID                int64 `gorm:"column:id;primaryKey;autoIncrement"`
	Province          *int  `gorm:"column:province"`
	EducationLevel    *int  `gorm:"column:education_level"`
	LabourForceStatus *int  `gorm:"column:labour_force_status"`
}

func (labourRow) TableName() string {
	return "labour_market_data"
}

// MigrateSchema creates the housing and labour tables when they are missing
// and adds any column introduced since the file was created.
func (d *Database) MigrateSchema() error {
	if err := d.gorm.AutoMigrate(&housingRow{}, &labourRow{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
