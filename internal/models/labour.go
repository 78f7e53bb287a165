package models

// LabourData is one labour-force survey record. All fields are category codes.
type LabourData struct {
	ID                int64 `json:"id"`
	Province          *int  `json:"province"`
	EducationLevel    *int  `json:"educationLevel"`
	LabourForceStatus *int  `json:"labourForceStatus"`
}
