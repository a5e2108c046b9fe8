package triage

import (
	"time"

	"github.com/Meena292006/MedHive/internal/platform/ml"
)

// Priority is the binary triage tier gating clinician attention.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
)

// Status tracks whether a case has been handled by a doctor. The only legal
// transition is PENDING -> TREATED, performed by the prescribing workflow.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusTreated Status = "TREATED"
)

// Prediction is a (disease, probability) pair on a 0-100 percentage scale,
// in the classifier's own ranking order. Index 0 is the top prediction.
type Prediction struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}

// Case maps to the cases table: one patient encounter submitted for triage.
type Case struct {
	ID          int64        `db:"id" json:"id"`
	PatientName string       `db:"patient_name" json:"patient_name"`
	Symptoms    []string     `db:"symptoms" json:"symptoms"`
	Predictions []Prediction `db:"predictions" json:"predictions"`
	RiskScore   int          `db:"risk_score" json:"risk_score"`
	Priority    Priority     `db:"priority" json:"priority"`
	Status      Status       `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// fromMLPredictions converts classifier predictions into the stored form,
// preserving order verbatim.
func fromMLPredictions(preds []ml.Prediction) []Prediction {
	out := make([]Prediction, len(preds))
	for i, p := range preds {
		out[i] = Prediction{Disease: p.Disease, Probability: p.Probability}
	}
	return out
}
