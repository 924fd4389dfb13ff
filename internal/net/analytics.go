package net

import (
	"net/http"

	"twigane/internal/business"
	"twigane/internal/models"
)

// trackableTypes are the activity types accepted at the API boundary;
// anything else is rejected before it reaches the tracker.
var trackableTypes = map[models.ActivityType]bool{
	models.ActivityTypeChat:           true,
	models.ActivityTypeTranslation:    true,
	models.ActivityTypeQuiz:           true,
	models.ActivityTypePronunciation:  true,
	models.ActivityTypeQuizCompletion: true,
}

type trackActivityRequest struct {
	UserEmail string         `json:"user_email"`
	Type      string         `json:"type"`
	Details   map[string]any `json:"details"`
}

func (n *Net) handleTrackActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req trackActivityRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "user_email is required")
		return
	}
	activityType := models.ActivityType(req.Type)
	if !trackableTypes[activityType] {
		writeError(w, http.StatusBadRequest, "unknown activity type")
		return
	}

	id := n.tracker.TrackUserActivity(r.Context(), req.UserEmail, activityType, req.Details)
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

type trackQuizRequest struct {
	UserEmail string `json:"user_email"`
	business.QuizResultInput
}

func (n *Net) handleTrackQuizResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req trackQuizRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "user_email is required")
		return
	}

	id := n.tracker.TrackQuizResult(r.Context(), req.UserEmail, req.QuizResultInput)
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

// handleDashboard never fails for an unknown user; it serves the
// documented default structure instead.
func (n *Net) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")
	writeJSON(w, http.StatusOK, n.aggregator.UserDashboard(r.Context(), email))
}

func (n *Net) handleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, n.aggregator.AdminAnalytics(r.Context()))
}

func (n *Net) handleAllUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": n.aggregator.AllUsers(r.Context())})
}
