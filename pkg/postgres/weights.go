package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// GetWeights retrieves the single evaluation weights row, falling back to
// the defaults when none has been stored yet.
func (d *DB) GetWeights(ctx context.Context) (model.Weights, error) {
	var w model.Weights
	err := d.pool.QueryRow(ctx, `
		SELECT w_social, w_messaging, w_awards, w_feedback, w_attendance, w_reports
		FROM evaluation_weights
		WHERE id = 1
	`).Scan(&w.Social, &w.Messaging, &w.Awards, &w.Feedback, &w.Attendance, &w.Reports)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DefaultWeights(), nil
	}
	if err != nil {
		return model.Weights{}, fmt.Errorf("failed to query weights: %w", err)
	}
	return w, nil
}

// SetWeights stores the evaluation weights, creating the single row if
// needed
func (d *DB) SetWeights(ctx context.Context, w model.Weights) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO evaluation_weights (id, w_social, w_messaging, w_awards, w_feedback, w_attendance, w_reports)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			w_social = EXCLUDED.w_social,
			w_messaging = EXCLUDED.w_messaging,
			w_awards = EXCLUDED.w_awards,
			w_feedback = EXCLUDED.w_feedback,
			w_attendance = EXCLUDED.w_attendance,
			w_reports = EXCLUDED.w_reports
	`, w.Social, w.Messaging, w.Awards, w.Feedback, w.Attendance, w.Reports)
	if err != nil {
		return fmt.Errorf("failed to set weights: %w", err)
	}
	return nil
}
