package prescription

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (case_id, doctor_name, medicines, recommendations)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.CaseID, p.DoctorName, p.Medicines, p.Recommendations).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) ListByCase(ctx context.Context, caseID int64, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM prescriptions WHERE case_id = $1`, caseID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, case_id, doctor_name, medicines, recommendations, created_at
		FROM prescriptions
		WHERE case_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, caseID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Prescription
	for rows.Next() {
		var p Prescription
		if err := rows.Scan(&p.ID, &p.CaseID, &p.DoctorName, &p.Medicines,
			&p.Recommendations, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, rows.Err()
}
