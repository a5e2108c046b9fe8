package prescription

import "context"

// Repository is the durable prescription store. ListByCase pages through the
// prescriptions of one case, newest first, and reports the total count.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	ListByCase(ctx context.Context, caseID int64, limit, offset int) ([]*Prescription, int, error)
}
