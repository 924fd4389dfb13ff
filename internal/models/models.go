package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityTypeChat           ActivityType = "chat"
	ActivityTypeTranslation    ActivityType = "translation"
	ActivityTypeQuiz           ActivityType = "quiz"
	ActivityTypePronunciation  ActivityType = "pronunciation"
	ActivityTypeQuizCompletion ActivityType = "quiz_completion"
)

// CounterColumn maps an activity type to the user_stats column it increments.
// Unknown types fall back to "<type>_count" naming.
func (t ActivityType) CounterColumn() string {
	switch t {
	case ActivityTypeChat:
		return "chat_count"
	case ActivityTypeTranslation:
		return "translation_count"
	case ActivityTypeQuiz, ActivityTypeQuizCompletion:
		return "quiz_attempts"
	case ActivityTypePronunciation:
		return "pronunciation_count"
	}
	return string(t) + "_count"
}

// Details is the free-form detail map stored with an activity,
// persisted as a JSON text column.
type Details map[string]any

func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *Details) Scan(value any) error {
	if value == nil {
		*d = make(Details)
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported details column type %T", value)
	}

	return json.Unmarshal(b, d)
}

// Activity is one logged user action. Immutable once written.
type Activity struct {
	ID        int64        `json:"id"`
	UserEmail string       `json:"user_email"`
	Type      ActivityType `json:"type"`
	Details   Details      `json:"details"`
	Timestamp time.Time    `json:"timestamp"`
	Date      string       `json:"date"` // YYYY-MM-DD
}

// UserStats is the per-user running counter row, keyed by email.
// TotalActivities always equals the sum of the four type counters.
type UserStats struct {
	UserEmail          string    `json:"user_email"`
	ChatCount          int       `json:"chat_count"`
	TranslationCount   int       `json:"translation_count"`
	QuizAttempts       int       `json:"quiz_attempts"`
	PronunciationCount int       `json:"pronunciation_count"`
	TotalActivities    int       `json:"total_activities"`
	TotalQuizScore     int       `json:"total_quiz_score"`
	BestQuizScore      int       `json:"best_quiz_score"`
	LastQuizScore      int       `json:"last_quiz_score"`
	LastActive         time.Time `json:"last_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// QuizResult is one completed quiz, written in addition to the generic
// activity record for the same attempt.
type QuizResult struct {
	ID             int64     `json:"id"`
	UserEmail      string    `json:"user_email"`
	Score          int       `json:"score"`
	Percentage     int       `json:"percentage"`
	TotalQuestions int       `json:"total_questions"`
	Category       string    `json:"category"`
	Difficulty     string    `json:"difficulty"`
	Timestamp      time.Time `json:"timestamp"`
	Date           string    `json:"date"`
}

// WhatsApp Cloud API webhook envelope. Only the fields the gateway
// dispatches on are modeled; everything else is dropped on decode.

type WebhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Metadata WebhookMetadata  `json:"metadata"`
	Messages []InboundMessage `json:"messages"`
}

type WebhookMetadata struct {
	PhoneNumberID string `json:"phone_number_id"`
}

type InboundMessage struct {
	From string       `json:"from"`
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

type MessageText struct {
	Body string `json:"body"`
}

// Body returns the text body of an inbound message, empty for non-text types.
func (m InboundMessage) Body() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}
