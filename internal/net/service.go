package net

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"twigane/internal/business"
	"twigane/internal/models"
	"twigane/internal/quiz"
	"twigane/internal/responder"
)

const (
	HealthMessage = "Twigane WhatsApp Bot is running!"

	// Delay before the translation follow-up so the two messages are not
	// perceived as one by the recipient's client.
	DefaultTranslationDelay = time.Second
)

type Responder interface {
	Respond(input string) responder.Reply
}

type Messenger interface {
	SendText(ctx context.Context, to, text string) error
}

type Tracker interface {
	TrackUserActivity(ctx context.Context, userEmail string, activityType models.ActivityType, details map[string]any) int64
	TrackQuizResult(ctx context.Context, userEmail string, input business.QuizResultInput) int64
}

type Aggregator interface {
	UserDashboard(ctx context.Context, userEmail string) business.Dashboard
	AdminAnalytics(ctx context.Context) business.AdminAnalytics
	AllUsers(ctx context.Context) []business.UserSummary
}

type QuizBank interface {
	Categories() []string
	Difficulties(category string) []string
	Generate(category, difficulty string, n int) quiz.Quiz
}

// Net is the HTTP delivery layer: the WhatsApp webhook plus the
// analytics and quiz API consumed by the web client.
type Net struct {
	log        *logrus.Logger
	responder  Responder
	sender     Messenger
	tracker    Tracker
	aggregator Aggregator
	quiz       QuizBank

	verifyToken string

	// TranslationDelay is overridable so tests don't sleep for a second.
	TranslationDelay time.Duration
}

func NewNet(log *logrus.Logger, rsp Responder, sender Messenger, tracker Tracker, aggregator Aggregator, bank QuizBank, verifyToken string) *Net {
	return &Net{
		log:              log,
		responder:        rsp,
		sender:           sender,
		tracker:          tracker,
		aggregator:       aggregator,
		quiz:             bank,
		verifyToken:      verifyToken,
		TranslationDelay: DefaultTranslationDelay,
	}
}

// Register wires every route onto the mux.
func (n *Net) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/whatsapp/webhook", n.handleWebhook)
	mux.HandleFunc("/api/health", n.handleHealth)

	mux.HandleFunc("/api/analytics/activity", n.handleTrackActivity)
	mux.HandleFunc("/api/analytics/quiz", n.handleTrackQuizResult)
	mux.HandleFunc("/api/analytics/dashboard", n.handleDashboard)
	mux.HandleFunc("/api/analytics/admin", n.handleAdminAnalytics)
	mux.HandleFunc("/api/analytics/users", n.handleAllUsers)

	mux.HandleFunc("/api/quiz/categories", n.handleQuizCategories)
	mux.HandleFunc("/api/quiz/generate", n.handleQuizGenerate)
	mux.HandleFunc("/api/quiz/submit", n.handleQuizSubmit)
	mux.HandleFunc("/api/quiz/random", n.handleQuizRandom)
}

func (n *Net) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"message":   HealthMessage,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func readJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(out)
}
