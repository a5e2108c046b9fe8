package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/Meena292006/MedHive/internal/domain/triage"
)

// CaseFinalizer is the slice of the triage service a prescription needs:
// confirming the case exists and marking it treated once prescribed.
type CaseFinalizer interface {
	GetCase(ctx context.Context, id int64) (*triage.Case, error)
	UpdateStatus(ctx context.Context, id int64, status triage.Status) error
}

type Service struct {
	repo  Repository
	cases CaseFinalizer
}

func NewService(repo Repository, cases CaseFinalizer) *Service {
	return &Service{repo: repo, cases: cases}
}

// Prescribe records the prescription and flips the case to TREATED. The case
// must exist; the status flip is best-effort ordering, the prescription is
// written first.
func (s *Service) Prescribe(ctx context.Context, p *Prescription) error {
	if p.CaseID <= 0 {
		return errors.New("case_id is required")
	}
	if p.DoctorName == "" {
		return errors.New("doctor_name is required")
	}
	if _, err := s.cases.GetCase(ctx, p.CaseID); err != nil {
		return fmt.Errorf("case %d not found", p.CaseID)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create prescription: %w", err)
	}
	if err := s.cases.UpdateStatus(ctx, p.CaseID, triage.StatusTreated); err != nil {
		return fmt.Errorf("mark case treated: %w", err)
	}
	return nil
}

// ListByCase pages through a case's prescriptions, newest first.
func (s *Service) ListByCase(ctx context.Context, caseID int64, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.ListByCase(ctx, caseID, limit, offset)
}
