package triage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type caseRepoPG struct{ pool *pgxpool.Pool }

func NewCaseRepoPG(pool *pgxpool.Pool) CaseRepository { return &caseRepoPG{pool: pool} }

const caseCols = `id, patient_name, symptoms, predictions, risk_score, priority, status, created_at`

func scanCase(row pgx.Row) (*Case, error) {
	var c Case
	var symptoms, predictions []byte
	err := row.Scan(&c.ID, &c.PatientName, &symptoms, &predictions,
		&c.RiskScore, &c.Priority, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(symptoms, &c.Symptoms); err != nil {
		return nil, fmt.Errorf("decode symptoms for case %d: %w", c.ID, err)
	}
	if err := json.Unmarshal(predictions, &c.Predictions); err != nil {
		return nil, fmt.Errorf("decode predictions for case %d: %w", c.ID, err)
	}
	return &c, nil
}

func (r *caseRepoPG) Create(ctx context.Context, c *Case) error {
	if c.Symptoms == nil {
		c.Symptoms = []string{}
	}
	if c.Predictions == nil {
		c.Predictions = []Prediction{}
	}
	symptoms, err := json.Marshal(c.Symptoms)
	if err != nil {
		return fmt.Errorf("encode symptoms: %w", err)
	}
	predictions, err := json.Marshal(c.Predictions)
	if err != nil {
		return fmt.Errorf("encode predictions: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO cases (patient_name, symptoms, predictions, risk_score, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`,
		c.PatientName, symptoms, predictions, c.RiskScore, c.Priority).
		Scan(&c.ID, &c.Status, &c.CreatedAt)
	return err
}

func (r *caseRepoPG) GetByID(ctx context.Context, id int64) (*Case, error) {
	return scanCase(r.pool.QueryRow(ctx, `SELECT `+caseCols+` FROM cases WHERE id = $1`, id))
}

func (r *caseRepoPG) List(ctx context.Context) ([]*Case, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+caseCols+` FROM cases ORDER BY risk_score DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindBySymptoms scans the whole table in insertion order and tests the
// intersection app-side. Keeping the match in Go preserves exact
// case-sensitive string semantics and the documented id-order of results.
func (r *caseRepoPG) FindBySymptoms(ctx context.Context, symptoms []string) ([]*Case, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+caseCols+` FROM cases ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		if sharesSymptom(symptoms, c.Symptoms) {
			matches = append(matches, c)
		}
	}
	return matches, rows.Err()
}

func sharesSymptom(query, stored []string) bool {
	for _, q := range query {
		for _, s := range stored {
			if q == s {
				return true
			}
		}
	}
	return false
}

func (r *caseRepoPG) UpdateStatus(ctx context.Context, id int64, status Status) error {
	// No-op when the id does not exist; RowsAffected is deliberately not
	// inspected.
	_, err := r.pool.Exec(ctx, `UPDATE cases SET status = $2 WHERE id = $1`, id, status)
	return err
}
