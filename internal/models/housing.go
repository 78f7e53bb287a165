package models

// HousingData holds monthly housing starts and completions for one census
// metropolitan area, broken down by dwelling type. Counts are nullable because
// older rows were ingested without them.
type HousingData struct {
	ID                int64  `json:"id"`
	CensusArea        string `json:"censusArea"`
	TotalStarts       *int   `json:"totalStarts"`
	TotalComplete     *int   `json:"totalComplete"`
	Month             *int   `json:"month" binding:"omitempty,min=1,max=12"`
	SingleStarts      *int   `json:"singleStarts"`
	SemisStarts       *int   `json:"semisStarts"`
	RowStarts         *int   `json:"rowStarts"`
	ApartmentStarts   *int   `json:"apartmentStarts"`
	SinglesComplete   *int   `json:"singlesComplete"`
	SemisComplete     *int   `json:"semisComplete"`
	RowComplete       *int   `json:"rowComplete"`
	ApartmentComplete *int   `json:"apartmentComplete"`
}

// HousingFilter narrows a housing listing to rows with an exact total.
type HousingFilter struct {
	TotalStarts   *int
	TotalComplete *int
}
