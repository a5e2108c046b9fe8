package triage

import "context"

// CaseRepository is the durable case store. Create assigns ID, CreatedAt and
// the PENDING status. List returns every case, most severe and most recent
// first. FindBySymptoms scans all cases in insertion order and returns those
// sharing at least one symptom (case-sensitive exact match) with the query.
// UpdateStatus on an unknown id is a silent no-op.
type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id int64) (*Case, error)
	List(ctx context.Context) ([]*Case, error)
	FindBySymptoms(ctx context.Context, symptoms []string) ([]*Case, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
