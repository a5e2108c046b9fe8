package triage

import (
	"context"
	"fmt"

	"github.com/Meena292006/MedHive/internal/platform/ml"
)

// defaultPatientName is recorded when a submission omits the patient name.
const defaultPatientName = "Anonymous"

// similarCaseLimit caps the similar-case list returned to callers. The finder
// itself returns the full matching set; truncation happens at assembly.
const similarCaseLimit = 3

// Predictor obtains ranked disease probabilities for a symptom list.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (*ml.Result, error)
}

// SubmitResult is the intake response: the derived triage outcome plus
// clinician context.
type SubmitResult struct {
	RiskScore        int          `json:"risk_score"`
	Priority         Priority     `json:"priority"`
	Predictions      []Prediction `json:"predictions"`
	SimilarPastCases []*Case      `json:"similar_past_cases"`
}

// Service orchestrates case intake: predict, score, persist, and look up
// similar history. It is the only state-changing entry point for cases.
type Service struct {
	cases     CaseRepository
	predictor Predictor
}

func NewService(cases CaseRepository, predictor Predictor) *Service {
	return &Service{cases: cases, predictor: predictor}
}

// SubmitCase runs the intake pipeline in strict order. A prediction failure
// aborts before anything is persisted; a case with no prediction data is
// never written.
func (s *Service) SubmitCase(ctx context.Context, patientName string, symptoms []string) (*SubmitResult, error) {
	if patientName == "" {
		patientName = defaultPatientName
	}
	if symptoms == nil {
		symptoms = []string{}
	}

	res, err := s.predictor.Predict(ctx, symptoms)
	if err != nil {
		return nil, fmt.Errorf("predict symptoms: %w", err)
	}

	predictions := fromMLPredictions(res.Predictions)
	riskScore := RiskScore(predictions)
	priority := ResolvePriority(res.PriorityHint, res.IsDanger, riskScore)

	c := &Case{
		PatientName: patientName,
		Symptoms:    symptoms,
		Predictions: predictions,
		RiskScore:   riskScore,
		Priority:    priority,
		Status:      StatusPending,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	matches, err := s.cases.FindBySymptoms(ctx, symptoms)
	if err != nil {
		return nil, fmt.Errorf("find similar cases: %w", err)
	}

	// Only prior cases count; the one just written matches itself trivially.
	similar := make([]*Case, 0, similarCaseLimit)
	for _, m := range matches {
		if m.ID == c.ID {
			continue
		}
		similar = append(similar, m)
		if len(similar) == similarCaseLimit {
			break
		}
	}

	return &SubmitResult{
		RiskScore:        riskScore,
		Priority:         priority,
		Predictions:      predictions,
		SimilarPastCases: similar,
	}, nil
}

// ListCases returns every case, most severe and most recent first.
func (s *Service) ListCases(ctx context.Context) ([]*Case, error) {
	return s.cases.List(ctx)
}

// GetCase returns a single case by id.
func (s *Service) GetCase(ctx context.Context, id int64) (*Case, error) {
	return s.cases.GetByID(ctx, id)
}

// UpdateStatus sets the case status. Unknown ids are a silent no-op,
// matching the store contract.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if status != StatusPending && status != StatusTreated {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.cases.UpdateStatus(ctx, id, status)
}
