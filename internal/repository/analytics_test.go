package repository

import (
	"context"
	"testing"
	"time"

	"twigane/internal/models"
	"twigane/internal/testutil"
)

func TestStoreActivityRoundTrip(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	id, err := repo.StoreActivity(ctx, &models.Activity{
		UserEmail: "a@example.com",
		Type:      models.ActivityTypeChat,
		Details:   models.Details{"question": "muraho"},
		Timestamp: now,
		Date:      "2024-03-07",
	})
	if err != nil {
		t.Fatalf("StoreActivity: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := repo.UserActivities(ctx, "a@example.com", 20)
	if err != nil {
		t.Fatalf("UserActivities: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d activities, want 1", len(got))
	}
	if got[0].Type != models.ActivityTypeChat || got[0].Details["question"] != "muraho" {
		t.Fatalf("unexpected record %+v", got[0])
	}
}

func TestBumpUserStatsCreatesThenIncrements(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		if err := repo.BumpUserStats(ctx, "a@example.com", models.ActivityTypeQuiz, now); err != nil {
			t.Fatalf("BumpUserStats #%d: %v", i, err)
		}
	}

	s, err := repo.GetUserStats(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if s == nil {
		t.Fatal("stats row missing")
	}
	if s.QuizAttempts != 3 || s.TotalActivities != 3 {
		t.Fatalf("quiz_attempts=%d total=%d, want 3/3", s.QuizAttempts, s.TotalActivities)
	}
	if s.ChatCount != 0 || s.TranslationCount != 0 || s.PronunciationCount != 0 {
		t.Fatalf("other counters must stay zero: %+v", s)
	}
}

func TestBumpUserStatsInvariantAcrossTypes(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	types := []models.ActivityType{
		models.ActivityTypeChat,
		models.ActivityTypeChat,
		models.ActivityTypeTranslation,
		models.ActivityTypePronunciation,
	}
	for _, typ := range types {
		if err := repo.BumpUserStats(ctx, "a@example.com", typ, now); err != nil {
			t.Fatalf("BumpUserStats(%s): %v", typ, err)
		}
	}

	s, _ := repo.GetUserStats(ctx, "a@example.com")
	sum := s.ChatCount + s.TranslationCount + s.QuizAttempts + s.PronunciationCount
	if s.TotalActivities != sum {
		t.Fatalf("total_activities=%d, sum of counters=%d", s.TotalActivities, sum)
	}
}

func TestBumpUserStatsRejectsUnknownType(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	err := repo.BumpUserStats(context.Background(), "a@example.com", models.ActivityType("weird"), time.Now())
	if err == nil {
		t.Fatal("expected error for unmapped counter column")
	}
}

func TestGetUserStatsMissingIsNil(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))

	s, err := repo.GetUserStats(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil for unknown user, got %+v", s)
	}
}

func TestRecentActivitiesOrderedDesc(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := repo.StoreActivity(ctx, &models.Activity{
			UserEmail: "a@example.com",
			Type:      models.ActivityTypeChat,
			Details:   models.Details{},
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Date:      "2024-03-07",
		})
		if err != nil {
			t.Fatalf("StoreActivity: %v", err)
		}
	}

	got, err := repo.RecentActivities(ctx, 3)
	if err != nil {
		t.Fatalf("RecentActivities: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Fatalf("not ordered desc: %v then %v", got[i-1].Timestamp, got[i].Timestamp)
		}
	}
}

func TestListUserStats(t *testing.T) {
	repo := NewRepository(testutil.OpenTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if err := repo.BumpUserStats(ctx, email, models.ActivityTypeChat, now); err != nil {
			t.Fatalf("BumpUserStats: %v", err)
		}
	}

	all, err := repo.ListUserStats(ctx)
	if err != nil {
		t.Fatalf("ListUserStats: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d rows, want 2", len(all))
	}
}
