package models

// CombinedData joins the housing starts total of a census area with a single
// labour record. It is built per request and never stored.
type CombinedData struct {
	CensusArea  string      `json:"censusArea"`
	TotalStarts int64       `json:"totalStarts"`
	LabourData  *LabourData `json:"labourData"`
}
