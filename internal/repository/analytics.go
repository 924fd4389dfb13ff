package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"twigane/internal/models"
)

// Repository persists activities, per-user counters and quiz results.
// The *sql.DB handle is injected at boot and never re-initialized.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// counterColumns whitelists the user_stats columns an activity may
// increment; the column name is interpolated into SQL and must never
// come from user input unchecked.
var counterColumns = map[string]bool{
	"chat_count":          true,
	"translation_count":   true,
	"quiz_attempts":       true,
	"pronunciation_count": true,
}

// StoreActivity appends one immutable activity record.
func (r *Repository) StoreActivity(ctx context.Context, a *models.Activity) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO activities (user_email, type, details, timestamp, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.UserEmail, string(a.Type), a.Details, a.Timestamp, a.Date,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert activity")
	}
	return id, nil
}

// BumpUserStats creates the per-user counter row on first activity and
// increments it atomically afterwards. The store's upsert is the only
// concurrency control; concurrent writers must not lose updates.
func (r *Repository) BumpUserStats(ctx context.Context, userEmail string, activityType models.ActivityType, now time.Time) error {
	column := activityType.CounterColumn()
	if !counterColumns[column] {
		return errors.Errorf("unknown counter column %q for activity type %q", column, activityType)
	}

	query := fmt.Sprintf(
		`INSERT INTO user_stats (user_email, %[1]s, total_activities, last_active, created_at)
		 VALUES ($1, 1, 1, $2, $3)
		 ON CONFLICT (user_email) DO UPDATE SET
			%[1]s = user_stats.%[1]s + 1,
			total_activities = user_stats.total_activities + 1,
			last_active = excluded.last_active`,
		column,
	)

	_, err := r.db.ExecContext(ctx, query, userEmail, now, now)
	return errors.Wrap(err, "bump user stats")
}

// GetUserStats returns the counter row for a user, nil when none exists.
// A missing row is not an error; callers build default structures.
func (r *Repository) GetUserStats(ctx context.Context, userEmail string) (*models.UserStats, error) {
	var s models.UserStats
	err := r.db.QueryRowContext(
		ctx,
		`SELECT user_email, chat_count, translation_count, quiz_attempts, pronunciation_count,
			total_activities, total_quiz_score, best_quiz_score, last_quiz_score,
			last_active, created_at
		 FROM user_stats
		 WHERE user_email = $1`,
		userEmail,
	).Scan(
		&s.UserEmail, &s.ChatCount, &s.TranslationCount, &s.QuizAttempts, &s.PronunciationCount,
		&s.TotalActivities, &s.TotalQuizScore, &s.BestQuizScore, &s.LastQuizScore,
		&s.LastActive, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user stats")
	}
	return &s, nil
}

// ListUserStats scans the whole user_stats table. The learner base is a
// single institution; the full scan is deliberate.
func (r *Repository) ListUserStats(ctx context.Context) ([]models.UserStats, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT user_email, chat_count, translation_count, quiz_attempts, pronunciation_count,
			total_activities, total_quiz_score, best_quiz_score, last_quiz_score,
			last_active, created_at
		 FROM user_stats`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list user stats")
	}
	defer rows.Close()

	var out []models.UserStats
	for rows.Next() {
		var s models.UserStats
		if err := rows.Scan(
			&s.UserEmail, &s.ChatCount, &s.TranslationCount, &s.QuizAttempts, &s.PronunciationCount,
			&s.TotalActivities, &s.TotalQuizScore, &s.BestQuizScore, &s.LastQuizScore,
			&s.LastActive, &s.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan user stats")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UserActivities fetches up to limit of a user's activity records with no
// store-side ordering; callers sort by timestamp themselves. Under heavy
// per-user volume this can miss genuinely recent rows.
func (r *Repository) UserActivities(ctx context.Context, userEmail string, limit int) ([]models.Activity, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_email, type, details, timestamp, date
		 FROM activities
		 WHERE user_email = $1
		 LIMIT $2`,
		userEmail, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list user activities")
	}
	defer rows.Close()

	return scanActivities(rows)
}

// RecentActivities fetches the limit globally most recent records,
// ordered by the store.
func (r *Repository) RecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_email, type, details, timestamp, date
		 FROM activities
		 ORDER BY timestamp DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list recent activities")
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows *sql.Rows) ([]models.Activity, error) {
	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		var typ string
		if err := rows.Scan(&a.ID, &a.UserEmail, &typ, &a.Details, &a.Timestamp, &a.Date); err != nil {
			return nil, errors.Wrap(err, "scan activity")
		}
		a.Type = models.ActivityType(typ)
		out = append(out, a)
	}
	return out, rows.Err()
}
