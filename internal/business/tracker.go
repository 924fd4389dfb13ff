package business

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"twigane/internal/models"
	"twigane/pkg/tools"
)

type Repository interface {
	StoreActivity(ctx context.Context, a *models.Activity) (int64, error)
	BumpUserStats(ctx context.Context, userEmail string, activityType models.ActivityType, now time.Time) error
	GetUserStats(ctx context.Context, userEmail string) (*models.UserStats, error)
	ListUserStats(ctx context.Context) ([]models.UserStats, error)
	UserActivities(ctx context.Context, userEmail string, limit int) ([]models.Activity, error)
	RecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
	StoreQuizResult(ctx context.Context, q *models.QuizResult) (int64, error)
	ApplyQuizResult(ctx context.Context, userEmail string, percentage int, now time.Time) error
	UserQuizResults(ctx context.Context, userEmail string, limit int) ([]models.QuizResult, error)
}

type DailyStore interface {
	AddActiveUser(ctx context.Context, date, userEmail string) error
	ActiveUserCount(ctx context.Context, date string) (int, error)
}

// Tracker records user activity. Tracking must never break the
// user-facing action that triggered it, so every failure is logged and
// swallowed; callers only see the new record's id, zero on failure.
type Tracker struct {
	log   *logrus.Logger
	repo  Repository
	daily DailyStore
}

func NewTracker(log *logrus.Logger, repo Repository, daily DailyStore) *Tracker {
	return &Tracker{
		log:   log,
		repo:  repo,
		daily: daily,
	}
}

// TrackUserActivity appends one activity record, bumps the user's
// counters and marks the user active today. Not idempotent: every call
// creates a new record. Counter or daily-set failures do not void the
// already-written record.
func (t *Tracker) TrackUserActivity(ctx context.Context, userEmail string, activityType models.ActivityType, details map[string]any) int64 {
	if userEmail == "" {
		return 0
	}

	now := time.Now().UTC()
	activity := &models.Activity{
		UserEmail: userEmail,
		Type:      activityType,
		Details:   tools.SanitizeDetails(details),
		Timestamp: now,
		Date:      tools.DateOf(now),
	}

	id, err := t.repo.StoreActivity(ctx, activity)
	if err != nil {
		t.log.WithError(err).
			WithField("user_email", userEmail).
			WithField("type", activityType).
			Error("failed to store activity")
		return 0
	}

	if err := t.repo.BumpUserStats(ctx, userEmail, activityType, now); err != nil {
		t.log.WithError(err).WithField("user_email", userEmail).Error("failed to update user stats")
	}

	if err := t.daily.AddActiveUser(ctx, activity.Date, userEmail); err != nil {
		t.log.WithError(err).WithField("user_email", userEmail).Error("failed to update daily active users")
	}

	return id
}

// QuizResultInput carries a completed quiz. Zero-valued fields fall back
// to the documented defaults.
type QuizResultInput struct {
	Score          int    `json:"score"`
	Percentage     int    `json:"percentage"`
	TotalQuestions int    `json:"total_questions"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
}

// TrackQuizResult appends a quiz-result record and folds the percentage
// into the user's counters. The counter update targets an existing stats
// row; when none exists the result record still persists but the call
// reports failure.
func (t *Tracker) TrackQuizResult(ctx context.Context, userEmail string, input QuizResultInput) int64 {
	if userEmail == "" {
		return 0
	}

	category := input.Category
	if category == "" {
		category = "mixed"
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "mixed"
	}

	now := time.Now().UTC()
	result := &models.QuizResult{
		UserEmail:      userEmail,
		Score:          input.Score,
		Percentage:     input.Percentage,
		TotalQuestions: input.TotalQuestions,
		Category:       category,
		Difficulty:     difficulty,
		Timestamp:      now,
		Date:           tools.DateOf(now),
	}

	id, err := t.repo.StoreQuizResult(ctx, result)
	if err != nil {
		t.log.WithError(err).WithField("user_email", userEmail).Error("failed to store quiz result")
		return 0
	}

	if err := t.repo.ApplyQuizResult(ctx, userEmail, input.Percentage, now); err != nil {
		t.log.WithError(err).WithField("user_email", userEmail).Error("failed to apply quiz result to user stats")
		return 0
	}

	return id
}
