package prescription

import "time"

// Prescription is a doctor's treatment record for a triaged case.
type Prescription struct {
	ID              int64     `db:"id" json:"id"`
	CaseID          int64     `db:"case_id" json:"case_id"`
	DoctorName      string    `db:"doctor_name" json:"doctor_name"`
	Medicines       string    `db:"medicines" json:"medicines"`
	Recommendations string    `db:"recommendations" json:"recommendations"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
