package cohort

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct {
	pool *pgxpool.Pool
}

// NewPGSource loads records from the patient_record table created by the
// embedded migrations.
func NewPGSource(pool *pgxpool.Pool) RecordSource {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) LoadRecords(ctx context.Context) ([]PatientRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, age, conditions
		FROM patient_record
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query patient_record: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[PatientRecord])
	if err != nil {
		return nil, fmt.Errorf("scan patient_record: %w", err)
	}

	for i := range records {
		if records[i].Conditions == nil {
			records[i].Conditions = []string{}
		}
	}
	return records, nil
}
