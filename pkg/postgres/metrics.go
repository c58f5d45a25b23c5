package postgres

import (
	"context"
	"fmt"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// GetAllMetrics retrieves the aggregate metrics for every club that has a
// metrics row. Clubs without a row have implicit zero metrics.
func (d *DB) GetAllMetrics(ctx context.Context) ([]model.AggregateMetrics, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT club_id, social_posts, social_likes, social_reach, messages,
		       message_sentiment, awards_won, offline_attendance, report_score
		FROM club_metrics
		ORDER BY club_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var all []model.AggregateMetrics
	for rows.Next() {
		var m model.AggregateMetrics
		if err := rows.Scan(&m.ClubID, &m.SocialPosts, &m.SocialLikes, &m.SocialReach,
			&m.Messages, &m.MessageSentiment, &m.AwardsWon,
			&m.OfflineAttendance, &m.ReportScore); err != nil {
			return nil, fmt.Errorf("failed to scan metrics: %w", err)
		}
		all = append(all, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metrics: %w", err)
	}

	return all, nil
}

// UpsertMetrics writes the aggregate metrics for one club, replacing any
// existing row. Aggregation recomputes from the full source snapshot, so
// last-writer-wins is safe here.
func (d *DB) UpsertMetrics(ctx context.Context, m model.AggregateMetrics) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO club_metrics (club_id, social_posts, social_likes, social_reach,
		                          messages, message_sentiment, awards_won,
		                          offline_attendance, report_score, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (club_id) DO UPDATE SET
			social_posts = EXCLUDED.social_posts,
			social_likes = EXCLUDED.social_likes,
			social_reach = EXCLUDED.social_reach,
			messages = EXCLUDED.messages,
			message_sentiment = EXCLUDED.message_sentiment,
			awards_won = EXCLUDED.awards_won,
			offline_attendance = EXCLUDED.offline_attendance,
			report_score = EXCLUDED.report_score,
			updated_at = NOW()
	`, m.ClubID, m.SocialPosts, m.SocialLikes, m.SocialReach, m.Messages,
		m.MessageSentiment, m.AwardsWon, m.OfflineAttendance, m.ReportScore)
	if err != nil {
		return fmt.Errorf("failed to upsert metrics for club %d: %w", m.ClubID, err)
	}
	return nil
}
