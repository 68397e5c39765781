// Package session implements the survey session state machine: session
// lifecycle, answer storage, the navigation cursor, and completion. All
// reads and writes of session data go through the Manager; the persistence
// backend stays behind the Repository interface.
package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// IDPrefix starts every generated session id. Stored records use the
// session id as their storage key, so the prefix doubles as the record
// namespace for maintenance scans.
const IDPrefix = "survey_"

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// AnswerValue is a rating integer, a trimmed text string, or an explicit
// skip. The zero value is a skip. It serializes as a JSON number, string,
// or null respectively.
type AnswerValue struct {
	rating *int
	text   *string
}

// Rating builds a rating answer.
func Rating(n int) AnswerValue { return AnswerValue{rating: &n} }

// Text builds a free-text answer.
func Text(s string) AnswerValue { return AnswerValue{text: &s} }

// Skip builds an explicit "skipped" answer. A stored skip is distinct from
// never having answered the question.
func Skip() AnswerValue { return AnswerValue{} }

// Rating returns the rating value, if this is a rating answer.
func (v AnswerValue) Rating() (int, bool) {
	if v.rating == nil {
		return 0, false
	}
	return *v.rating, true
}

// Text returns the text value, if this is a text answer.
func (v AnswerValue) Text() (string, bool) {
	if v.text == nil {
		return "", false
	}
	return *v.text, true
}

// IsSkip reports whether the value is an explicit skip.
func (v AnswerValue) IsSkip() bool { return v.rating == nil && v.text == nil }

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.rating != nil:
		return json.Marshal(*v.rating)
	case v.text != nil:
		return json.Marshal(*v.text)
	default:
		return []byte("null"), nil
	}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty answer value")
	}
	if bytes.Equal(data, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = AnswerValue{text: &s}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("answer value must be a number, string, or null")
	}
	n := int(f)
	if float64(n) != f {
		return fmt.Errorf("rating value %v is not an integer", f)
	}
	*v = AnswerValue{rating: &n}
	return nil
}

// Answer is a stored answer for one question.
type Answer struct {
	Value      AnswerValue `json:"value"`
	AnsweredAt time.Time   `json:"answeredAt"`
}

// Session is one respondent's attempt at the survey. The JSON form is the
// persisted record shape; answer map keys marshal as decimal strings.
type Session struct {
	SessionID            string         `json:"sessionId"`
	StartTime            time.Time      `json:"startTime"`
	Status               Status         `json:"status"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Answers              map[int]Answer `json:"answers"`
	CompletedAt          *time.Time     `json:"completedAt"`
}

// Completed reports whether the session has reached its terminal state.
func (s *Session) Completed() bool { return s.Status == StatusCompleted }
