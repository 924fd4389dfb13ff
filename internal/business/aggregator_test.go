package business

import (
	"context"
	"reflect"
	"testing"
	"time"

	"twigane/internal/models"
	"twigane/internal/repository"
	"twigane/internal/testutil"
	"twigane/pkg/tools"
)

func TestUserDashboardUnknownUserDefaults(t *testing.T) {
	repo := repository.NewRepository(testutil.OpenTestDB(t))
	agg := NewAggregator(testLogger(), repo, newFakeDaily())

	got := agg.UserDashboard(context.Background(), "nobody@example.com")

	if !reflect.DeepEqual(got, DefaultDashboard()) {
		t.Fatalf("dashboard for unknown user = %+v, want documented defaults", got)
	}
	if len(got.Recommendations) != 3 {
		t.Fatalf("default recommendations = %v, want the fixed 3-item list", got.Recommendations)
	}
}

func TestUserDashboardComputed(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := repository.NewRepository(db)
	daily := newFakeDaily()
	tracker := NewTracker(testLogger(), repo, daily)
	agg := NewAggregator(testLogger(), repo, daily)
	ctx := context.Background()

	tracker.TrackUserActivity(ctx, "a@example.com", models.ActivityTypeChat, nil)
	tracker.TrackUserActivity(ctx, "a@example.com", models.ActivityTypeQuiz, nil)
	tracker.TrackQuizResult(ctx, "a@example.com", QuizResultInput{Percentage: 85, TotalQuestions: 10, Score: 8})
	tracker.TrackQuizResult(ctx, "a@example.com", QuizResultInput{Percentage: 70, TotalQuestions: 10, Score: 7})

	d := agg.UserDashboard(ctx, "a@example.com")

	// chat + quiz activity + two folded quiz results
	if d.Overview.QuizAttempts != 3 {
		t.Errorf("quiz_attempts = %d, want 3", d.Overview.QuizAttempts)
	}
	// round(155/3) = 52
	if d.Overview.AvgQuizScore != 52 {
		t.Errorf("avg_quiz_score = %d, want 52", d.Overview.AvgQuizScore)
	}
	if d.Overview.LearningStreak != 1 {
		t.Errorf("learning_streak = %d, want 1 (activity today only)", d.Overview.LearningStreak)
	}
	if !d.Achievements.FirstChat || !d.Achievements.FirstQuiz {
		t.Errorf("first_chat/first_quiz achievements missing: %+v", d.Achievements)
	}
	if !d.Achievements.QuizMaster {
		t.Errorf("best score 85 should unlock quiz_master: %+v", d.Achievements)
	}
	if d.Achievements.ConsistentLearner || d.Achievements.TranslationExplorer {
		t.Errorf("unexpected achievements unlocked: %+v", d.Achievements)
	}
	if len(d.Progress.QuizScores) != 2 {
		t.Errorf("quiz_scores = %+v, want 2 points", d.Progress.QuizScores)
	}
	if len(d.RecentActivities) != 2 {
		t.Errorf("recent_activities = %d, want 2", len(d.RecentActivities))
	}
}

func TestUserDashboardRecommendationGates(t *testing.T) {
	stats := &models.UserStats{
		ChatCount:          5,
		TranslationCount:   5,
		QuizAttempts:       1,
		PronunciationCount: 0,
	}

	recs := recommendations(stats)

	want := []string{
		"Take quizzes to test your knowledge",
		"Practice pronunciation to improve your accent",
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("recommendations = %v, want %v", recs, want)
	}
}

func TestLearningStreakBreaksAtGap(t *testing.T) {
	today := time.Now().UTC()
	day := func(offset int) string {
		return tools.DateOf(today.AddDate(0, 0, -offset))
	}

	activities := []models.Activity{
		{Date: day(0)},
		{Date: day(1)},
		{Date: day(2)},
		{Date: day(4)}, // gap at today-3
	}

	if got := learningStreak(activities, today); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestLearningStreakNoActivityToday(t *testing.T) {
	today := time.Now().UTC()
	activities := []models.Activity{
		{Date: tools.DateOf(today.AddDate(0, 0, -1))},
	}

	if got := learningStreak(activities, today); got != 0 {
		t.Fatalf("streak = %d, want 0 when today has no activity", got)
	}
}

func TestAdminAnalytics(t *testing.T) {
	repo := repository.NewRepository(testutil.OpenTestDB(t))
	daily := newFakeDaily()
	tracker := NewTracker(testLogger(), repo, daily)
	agg := NewAggregator(testLogger(), repo, daily)
	ctx := context.Background()

	tracker.TrackUserActivity(ctx, "a@example.com", models.ActivityTypeChat, nil)
	tracker.TrackUserActivity(ctx, "a@example.com", models.ActivityTypeTranslation, nil)
	tracker.TrackUserActivity(ctx, "b@example.com", models.ActivityTypeQuiz, nil)
	tracker.TrackQuizResult(ctx, "b@example.com", QuizResultInput{Percentage: 80})

	got := agg.AdminAnalytics(ctx)

	if got.Overview.TotalUsers != 2 {
		t.Errorf("total_users = %d, want 2", got.Overview.TotalUsers)
	}
	if got.Overview.DailyActiveUsers != 2 {
		t.Errorf("daily_active_users = %d, want 2", got.Overview.DailyActiveUsers)
	}
	if got.Overview.TotalInteractions != 3 {
		t.Errorf("total_interactions = %d, want 3", got.Overview.TotalInteractions)
	}
	if got.FeatureUsage.ChatInteractions != 1 || got.FeatureUsage.TranslationRequests != 1 {
		t.Errorf("feature usage wrong: %+v", got.FeatureUsage)
	}
	// one tracked quiz activity + one folded result
	if got.UserEngagement.TotalQuizAttempts != 2 {
		t.Errorf("total_quiz_attempts = %d, want 2", got.UserEngagement.TotalQuizAttempts)
	}
	if got.UserEngagement.AvgQuizScore != 40 {
		t.Errorf("avg_quiz_score = %d, want 40", got.UserEngagement.AvgQuizScore)
	}
	if !got.SystemHealth.TeachingModelLoaded || got.SystemHealth.ErrorCount != 0 {
		t.Errorf("system health flags must be the static values: %+v", got.SystemHealth)
	}
	if len(got.RecentActivities) != 3 {
		t.Errorf("recent_activities = %d, want 3", len(got.RecentActivities))
	}
}

func TestAllUsersSortedByActivity(t *testing.T) {
	repo := repository.NewRepository(testutil.OpenTestDB(t))
	daily := newFakeDaily()
	tracker := NewTracker(testLogger(), repo, daily)
	agg := NewAggregator(testLogger(), repo, daily)
	ctx := context.Background()

	tracker.TrackUserActivity(ctx, "low@example.com", models.ActivityTypeChat, nil)
	for i := 0; i < 3; i++ {
		tracker.TrackUserActivity(ctx, "high@example.com", models.ActivityTypeChat, nil)
	}

	users := agg.AllUsers(ctx)

	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Email != "high@example.com" || users[0].TotalActivities != 3 {
		t.Fatalf("expected high@example.com first, got %+v", users[0])
	}
	if users[1].LastActive == "Never" {
		t.Fatalf("active user must carry a last_active timestamp, got %+v", users[1])
	}
}
