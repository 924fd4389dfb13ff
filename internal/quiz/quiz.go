package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const MixedSelector = "mixed"

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	QuizID         string     `json:"quiz_id"`
	Category       string     `json:"category"`
	Difficulty     string     `json:"difficulty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

type QuestionResult struct {
	QuestionID    string   `json:"question_id"`
	Question      string   `json:"question"`
	UserAnswer    int      `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
	Options       []string `json:"options"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation"`
}

type Score struct {
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	Percentage      float64          `json:"percentage"`
	Performance     string           `json:"performance"`
	Feedback        string           `json:"feedback"`
	DetailedResults []QuestionResult `json:"detailed_results"`
}

// Bank serves quizzes from the static question set.
type Bank struct {
	questions map[string]map[string][]Question
	rand      *rand.Rand
}

func NewBank() *Bank {
	return &Bank{
		questions: questionBank,
		rand:      rand.New(rand.NewSource(rand.Int63())),
	}
}

// Categories lists the question categories in stable order.
func (b *Bank) Categories() []string {
	out := make([]string, 0, len(b.questions))
	for name := range b.questions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Difficulties lists the difficulty levels available for a category,
// empty for an unknown category.
func (b *Bank) Difficulties(category string) []string {
	levels, ok := b.questions[category]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(levels))
	for name := range levels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Generate builds a quiz of up to n random questions. "mixed" for either
// selector unions all matching buckets. A pool smaller than n yields the
// whole pool.
func (b *Bank) Generate(category, difficulty string, n int) Quiz {
	pool := b.collect(category, difficulty)

	var selected []Question
	if len(pool) <= n {
		selected = append(selected, pool...)
	} else {
		idx := b.rand.Perm(len(pool))[:n]
		for _, i := range idx {
			selected = append(selected, pool[i])
		}
	}
	b.rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return Quiz{
		QuizID:         fmt.Sprintf("quiz_%04d", 1000+b.rand.Intn(9000)),
		Category:       category,
		Difficulty:     difficulty,
		TotalQuestions: len(selected),
		Questions:      selected,
	}
}

func (b *Bank) collect(category, difficulty string) []Question {
	var pool []Question

	appendLevels := func(levels map[string][]Question) {
		if difficulty == MixedSelector {
			for _, name := range sortedKeys(levels) {
				pool = append(pool, levels[name]...)
			}
			return
		}
		pool = append(pool, levels[difficulty]...)
	}

	if category == MixedSelector {
		for _, name := range sortedKeys(b.questions) {
			appendLevels(b.questions[name])
		}
		return pool
	}
	if levels, ok := b.questions[category]; ok {
		appendLevels(levels)
	}
	return pool
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScoreQuiz grades submitted answers against the questions they were
// generated from. Missing answers count as wrong with answer -1.
func ScoreQuiz(questions []Question, answers []int) Score {
	correct := 0
	results := make([]QuestionResult, 0, len(questions))

	for i, q := range questions {
		answer := -1
		if i < len(answers) {
			answer = answers[i]
		}
		isCorrect := answer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	percentage := 0.0
	if len(questions) > 0 {
		percentage = math.Round(float64(correct)/float64(len(questions))*1000) / 10
	}

	performance, feedback := performanceBand(percentage)

	return Score{
		TotalQuestions:  len(questions),
		CorrectAnswers:  correct,
		Percentage:      percentage,
		Performance:     performance,
		Feedback:        feedback,
		DetailedResults: results,
	}
}

func performanceBand(percentage float64) (string, string) {
	switch {
	case percentage >= 90:
		return "excellent", "Excellent work! You have a strong grasp of Kinyarwanda!"
	case percentage >= 80:
		return "good", "Good job! You're doing well with your Kinyarwanda learning."
	case percentage >= 70:
		return "fair", "Fair performance. Keep practicing to improve your skills!"
	case percentage >= 60:
		return "needs_improvement", "You're making progress, but more practice would help."
	default:
		return "poor", "Don't worry! Learning takes time. Keep practicing and you'll improve!"
	}
}
