package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"twigane/internal/models"
)

// ErrUserStatsMissing reports a quiz-stats update against a user with no
// stats row. The quiz result row itself has already been written.
var ErrUserStatsMissing = errors.New("user stats row does not exist")

// StoreQuizResult appends one quiz result record.
func (r *Repository) StoreQuizResult(ctx context.Context, q *models.QuizResult) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO quiz_results (user_email, score, percentage, total_questions, category, difficulty, timestamp, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		q.UserEmail, q.Score, q.Percentage, q.TotalQuestions, q.Category, q.Difficulty, q.Timestamp, q.Date,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert quiz result")
	}
	return id, nil
}

// ApplyQuizResult folds a quiz percentage into the user's counters.
// best_quiz_score only moves when the new percentage clears 80; that is a
// threshold gate, not a running maximum. Dashboards trained on this field
// expect exactly that behavior, so don't "fix" it to a max.
func (r *Repository) ApplyQuizResult(ctx context.Context, userEmail string, percentage int, now time.Time) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE user_stats SET
			total_quiz_score = total_quiz_score + $1,
			quiz_attempts = quiz_attempts + 1,
			last_quiz_score = $2,
			best_quiz_score = CASE WHEN $3 > 80 THEN $4 ELSE best_quiz_score END,
			last_active = $5
		 WHERE user_email = $6`,
		percentage, percentage, percentage, percentage, now, userEmail,
	)
	if err != nil {
		return errors.Wrap(err, "apply quiz result")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "apply quiz result rows")
	}
	if n == 0 {
		return ErrUserStatsMissing
	}
	return nil
}

// UserQuizResults fetches up to limit of a user's quiz results with no
// store-side ordering, mirroring UserActivities.
func (r *Repository) UserQuizResults(ctx context.Context, userEmail string, limit int) ([]models.QuizResult, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_email, score, percentage, total_questions, category, difficulty, timestamp, date
		 FROM quiz_results
		 WHERE user_email = $1
		 LIMIT $2`,
		userEmail, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list user quiz results")
	}
	defer rows.Close()

	var out []models.QuizResult
	for rows.Next() {
		var q models.QuizResult
		if err := rows.Scan(&q.ID, &q.UserEmail, &q.Score, &q.Percentage, &q.TotalQuestions,
			&q.Category, &q.Difficulty, &q.Timestamp, &q.Date); err != nil {
			return nil, errors.Wrap(err, "scan quiz result")
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
