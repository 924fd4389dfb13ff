package business

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"twigane/internal/models"
	"twigane/pkg/tools"
)

const (
	recentFetchLimit      = 20
	dashboardHistoryLimit = 10
	dashboardRecentShown  = 5
)

type DashboardOverview struct {
	TotalInteractions int `json:"total_interactions"`
	QuizAttempts      int `json:"quiz_attempts"`
	AvgQuizScore      int `json:"avg_quiz_score"`
	LearningStreak    int `json:"learning_streak"`
}

type QuizScorePoint struct {
	Score     int       `json:"score"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardProgress struct {
	ChatInteractions      int              `json:"chat_interactions"`
	TranslationsMade      int              `json:"translations_made"`
	PronunciationPractice int              `json:"pronunciation_practice"`
	QuizScores            []QuizScorePoint `json:"quiz_scores"`
}

type Achievements struct {
	FirstChat           bool `json:"first_chat"`
	FirstQuiz           bool `json:"first_quiz"`
	QuizMaster          bool `json:"quiz_master"`
	ConsistentLearner   bool `json:"consistent_learner"`
	TranslationExplorer bool `json:"translation_explorer"`
}

type Dashboard struct {
	Overview         DashboardOverview `json:"overview"`
	Progress         DashboardProgress `json:"progress"`
	Achievements     Achievements      `json:"achievements"`
	Recommendations  []string          `json:"recommendations"`
	RecentActivities []models.Activity `json:"recent_activities"`
}

type AdminOverview struct {
	TotalUsers        int    `json:"total_users"`
	DailyActiveUsers  int    `json:"daily_active_users"`
	TotalInteractions int    `json:"total_interactions"`
	SystemUptime      string `json:"system_uptime"`
}

type FeatureUsage struct {
	ChatInteractions      int `json:"chat_interactions"`
	TranslationRequests   int `json:"translation_requests"`
	QuizAttempts          int `json:"quiz_attempts"`
	PronunciationRequests int `json:"pronunciation_requests"`
}

type UserEngagement struct {
	TotalQuizAttempts int `json:"total_quiz_attempts"`
	AvgQuizScore      int `json:"avg_quiz_score"`
	ActiveUsersToday  int `json:"active_users_today"`
}

// SystemHealth flags are static; real probes belong to the model service,
// which is outside this system.
type SystemHealth struct {
	TeachingModelLoaded    bool `json:"teaching_model_loaded"`
	TTSSystemLoaded        bool `json:"tts_system_loaded"`
	TranslationModelLoaded bool `json:"translation_model_loaded"`
	ErrorCount             int  `json:"error_count"`
}

type AdminAnalytics struct {
	Overview         AdminOverview     `json:"overview"`
	FeatureUsage     FeatureUsage      `json:"feature_usage"`
	UserEngagement   UserEngagement    `json:"user_engagement"`
	SystemHealth     SystemHealth      `json:"system_health"`
	RecentActivities []models.Activity `json:"recent_activities"`
}

type UserSummary struct {
	Email                 string `json:"email"`
	TotalQuizAttempts     int    `json:"total_quiz_attempts"`
	AvgQuizScore          int    `json:"avg_quiz_score"`
	ChatInteractions      int    `json:"chat_interactions"`
	TranslationRequests   int    `json:"translation_requests"`
	PronunciationRequests int    `json:"pronunciation_requests"`
	TotalActivities       int    `json:"total_activities"`
	LastActive            string `json:"last_active"`
}

// Aggregator builds dashboards by scanning the stored counters and
// records on demand. Nothing is cached or maintained incrementally; the
// learner base is small and freshness wins over scalability here.
type Aggregator struct {
	log   *logrus.Logger
	repo  Repository
	daily DailyStore
}

func NewAggregator(log *logrus.Logger, repo Repository, daily DailyStore) *Aggregator {
	return &Aggregator{
		log:   log,
		repo:  repo,
		daily: daily,
	}
}

// UserDashboard builds the per-user dashboard. An unknown user is not an
// error; it yields the documented all-zero default structure.
func (a *Aggregator) UserDashboard(ctx context.Context, userEmail string) Dashboard {
	if userEmail == "" {
		return DefaultDashboard()
	}

	stats, err := a.repo.GetUserStats(ctx, userEmail)
	if err != nil {
		a.log.WithError(err).WithField("user_email", userEmail).Error("failed to load user stats")
		return DefaultDashboard()
	}
	if stats == nil {
		return DefaultDashboard()
	}

	// Bounded unordered fetch, sorted here and truncated. Not a true
	// "most recent N" once a user exceeds the fetch window.
	activities, err := a.repo.UserActivities(ctx, userEmail, recentFetchLimit)
	if err != nil {
		a.log.WithError(err).WithField("user_email", userEmail).Warn("activities query failed, continuing without")
		activities = nil
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > dashboardHistoryLimit {
		activities = activities[:dashboardHistoryLimit]
	}

	quizResults, err := a.repo.UserQuizResults(ctx, userEmail, recentFetchLimit)
	if err != nil {
		a.log.WithError(err).WithField("user_email", userEmail).Warn("quiz query failed, continuing without")
		quizResults = nil
	}
	quizScores := make([]QuizScorePoint, 0, len(quizResults))
	for _, q := range quizResults {
		quizScores = append(quizScores, QuizScorePoint{
			Score:     q.Percentage,
			Date:      q.Date,
			Timestamp: q.Timestamp,
		})
	}
	sort.Slice(quizScores, func(i, j int) bool {
		return quizScores[i].Timestamp.After(quizScores[j].Timestamp)
	})
	if len(quizScores) > dashboardHistoryLimit {
		quizScores = quizScores[:dashboardHistoryLimit]
	}

	recent := activities
	if len(recent) > dashboardRecentShown {
		recent = recent[:dashboardRecentShown]
	}
	if recent == nil {
		recent = []models.Activity{}
	}

	return Dashboard{
		Overview: DashboardOverview{
			TotalInteractions: stats.TotalActivities,
			QuizAttempts:      stats.QuizAttempts,
			AvgQuizScore:      avgQuizScore(stats.TotalQuizScore, stats.QuizAttempts),
			LearningStreak:    learningStreak(activities, time.Now().UTC()),
		},
		Progress: DashboardProgress{
			ChatInteractions:      stats.ChatCount,
			TranslationsMade:      stats.TranslationCount,
			PronunciationPractice: stats.PronunciationCount,
			QuizScores:            quizScores,
		},
		Achievements:     calculateAchievements(stats),
		Recommendations:  recommendations(stats),
		RecentActivities: recent,
	}
}

// AdminAnalytics sums every counter site-wide in one full scan. O(users)
// per call, recomputed fresh on every admin page view.
func (a *Aggregator) AdminAnalytics(ctx context.Context) AdminAnalytics {
	allStats, err := a.repo.ListUserStats(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to scan user stats")
		return DefaultAdminAnalytics()
	}

	var usage FeatureUsage
	totalInteractions := 0
	totalQuizScore := 0
	for _, s := range allStats {
		totalInteractions += s.TotalActivities
		totalQuizScore += s.TotalQuizScore
		usage.ChatInteractions += s.ChatCount
		usage.TranslationRequests += s.TranslationCount
		usage.QuizAttempts += s.QuizAttempts
		usage.PronunciationRequests += s.PronunciationCount
	}

	today := tools.Today()
	activeToday, err := a.daily.ActiveUserCount(ctx, today)
	if err != nil {
		a.log.WithError(err).WithField("date", today).Error("failed to count daily active users")
		return DefaultAdminAnalytics()
	}

	recent, err := a.repo.RecentActivities(ctx, recentFetchLimit)
	if err != nil {
		a.log.WithError(err).Error("failed to load recent activities")
		return DefaultAdminAnalytics()
	}

	return AdminAnalytics{
		Overview: AdminOverview{
			TotalUsers:        len(allStats),
			DailyActiveUsers:  activeToday,
			TotalInteractions: totalInteractions,
			SystemUptime:      "Online",
		},
		FeatureUsage: usage,
		UserEngagement: UserEngagement{
			TotalQuizAttempts: usage.QuizAttempts,
			AvgQuizScore:      avgQuizScore(totalQuizScore, usage.QuizAttempts),
			ActiveUsersToday:  activeToday,
		},
		SystemHealth: SystemHealth{
			TeachingModelLoaded:    true,
			TTSSystemLoaded:        true,
			TranslationModelLoaded: true,
			ErrorCount:             0,
		},
		RecentActivities: recent,
	}
}

// AllUsers maps every stats row to a flat summary, sorted by total
// activities descending. Full scan, no pagination.
func (a *Aggregator) AllUsers(ctx context.Context) []UserSummary {
	allStats, err := a.repo.ListUserStats(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to list users")
		return []UserSummary{}
	}

	users := make([]UserSummary, 0, len(allStats))
	for _, s := range allStats {
		lastActive := "Never"
		if !s.LastActive.IsZero() {
			lastActive = s.LastActive.UTC().Format(time.RFC3339)
		}
		users = append(users, UserSummary{
			Email:                 s.UserEmail,
			TotalQuizAttempts:     s.QuizAttempts,
			AvgQuizScore:          avgQuizScore(s.TotalQuizScore, s.QuizAttempts),
			ChatInteractions:      s.ChatCount,
			TranslationRequests:   s.TranslationCount,
			PronunciationRequests: s.PronunciationCount,
			TotalActivities:       s.TotalActivities,
			LastActive:            lastActive,
		})
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].TotalActivities > users[j].TotalActivities
	})
	return users
}

func avgQuizScore(totalScore, attempts int) int {
	if attempts == 0 {
		return 0
	}
	return int(math.Round(float64(totalScore) / float64(attempts)))
}

// learningStreak counts consecutive calendar days ending today with at
// least one activity, stopping at the first gap.
func learningStreak(activities []models.Activity, today time.Time) int {
	if len(activities) == 0 {
		return 0
	}

	dates := make(map[string]bool, len(activities))
	for _, act := range activities {
		dates[act.Date] = true
	}

	streak := 0
	for i := 0; ; i++ {
		day := tools.DateOf(today.AddDate(0, 0, -i))
		if !dates[day] {
			break
		}
		streak++
	}
	return streak
}

func calculateAchievements(stats *models.UserStats) Achievements {
	return Achievements{
		FirstChat:           stats.ChatCount >= 1,
		FirstQuiz:           stats.QuizAttempts >= 1,
		QuizMaster:          stats.BestQuizScore >= 80,
		ConsistentLearner:   stats.TotalActivities >= 10,
		TranslationExplorer: stats.TranslationCount >= 5,
	}
}

func recommendations(stats *models.UserStats) []string {
	recs := make([]string, 0, 4)
	if stats.ChatCount < 3 {
		recs = append(recs, "Try having more conversations to improve your speaking skills")
	}
	if stats.TranslationCount < 5 {
		recs = append(recs, "Practice translation to expand your vocabulary")
	}
	if stats.QuizAttempts < 2 {
		recs = append(recs, "Take quizzes to test your knowledge")
	}
	if stats.PronunciationCount < 3 {
		recs = append(recs, "Practice pronunciation to improve your accent")
	}
	return recs
}

// DefaultDashboard is the exact structure served for users with no
// recorded activity.
func DefaultDashboard() Dashboard {
	return Dashboard{
		Overview: DashboardOverview{},
		Progress: DashboardProgress{
			QuizScores: []QuizScorePoint{},
		},
		Achievements: Achievements{},
		Recommendations: []string{
			"Start by having your first conversation",
			"Try translating some basic words",
			"Take a quiz to test your knowledge",
		},
		RecentActivities: []models.Activity{},
	}
}

func DefaultAdminAnalytics() AdminAnalytics {
	return AdminAnalytics{
		Overview: AdminOverview{
			SystemUptime: "Unknown",
		},
		SystemHealth: SystemHealth{
			TeachingModelLoaded:    false,
			TTSSystemLoaded:        false,
			TranslationModelLoaded: false,
			ErrorCount:             0,
		},
		RecentActivities: []models.Activity{},
	}
}
