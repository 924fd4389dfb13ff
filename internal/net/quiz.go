package net

import (
	"math"
	"net/http"

	"twigane/internal/business"
	"twigane/internal/models"
	"twigane/internal/quiz"
)

const defaultQuizLength = 10

func (n *Net) handleQuizCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": n.quiz.Categories()})
}

type generateQuizRequest struct {
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
	UserEmail    string `json:"user_email"`
}

func (n *Net) handleQuizGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateQuizRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		req.Category = quiz.MixedSelector
	}
	if req.Difficulty == "" {
		req.Difficulty = quiz.MixedSelector
	}
	if req.NumQuestions <= 0 {
		req.NumQuestions = defaultQuizLength
	}

	n.tracker.TrackUserActivity(r.Context(), req.UserEmail, models.ActivityTypeQuiz, map[string]any{
		"category":   req.Category,
		"difficulty": req.Difficulty,
	})

	writeJSON(w, http.StatusOK, n.quiz.Generate(req.Category, req.Difficulty, req.NumQuestions))
}

type submitQuizRequest struct {
	Questions  []quiz.Question `json:"questions"`
	Answers    []int           `json:"answers"`
	UserEmail  string          `json:"user_email"`
	Category   string          `json:"category"`
	Difficulty string          `json:"difficulty"`
}

func (n *Net) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitQuizRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results := quiz.ScoreQuiz(req.Questions, req.Answers)

	n.tracker.TrackUserActivity(r.Context(), req.UserEmail, models.ActivityTypeQuizCompletion, map[string]any{
		"score":     results.Percentage,
		"questions": len(req.Questions),
	})
	n.tracker.TrackQuizResult(r.Context(), req.UserEmail, business.QuizResultInput{
		Score:          results.CorrectAnswers,
		Percentage:     int(math.Round(results.Percentage)),
		TotalQuestions: results.TotalQuestions,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
	})

	writeJSON(w, http.StatusOK, results)
}

func (n *Net) handleQuizRandom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	q := n.quiz.Generate(quiz.MixedSelector, quiz.MixedSelector, 1)
	if len(q.Questions) == 0 {
		writeError(w, http.StatusNotFound, "no questions available")
		return
	}
	writeJSON(w, http.StatusOK, q.Questions[0])
}
