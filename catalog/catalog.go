// Package catalog defines the fixed, ordered list of survey questions and
// lookup helpers over it. A catalog is immutable once built; the session
// layer treats it as the single source of truth for question ids, types,
// and value constraints.
package catalog

import (
	"errors"
	"fmt"
)

type QuestionType string

const (
	TypeRating QuestionType = "rating"
	TypeText   QuestionType = "text"
)

// DefaultMaxLength is applied to text questions that do not set their own limit.
const DefaultMaxLength = 500

// Question is a single catalog entry. Scale and ScaleLabels are only
// meaningful for rating questions; MaxLength and Placeholder only for text
// questions.
type Question struct {
	ID          int            `yaml:"id" json:"id"`
	Type        QuestionType   `yaml:"type" json:"type"`
	Prompt      string         `yaml:"prompt" json:"prompt"`
	Scale       int            `yaml:"scale,omitempty" json:"scale,omitempty"`
	ScaleLabels map[int]string `yaml:"scale_labels,omitempty" json:"scale_labels,omitempty"`
	MaxLength   int            `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	Placeholder string         `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool           `yaml:"required,omitempty" json:"required,omitempty"`
}

// Catalog is an ordered, validated question list with O(1) id lookup.
type Catalog struct {
	questions []Question
	byID      map[int]Question
}

// New validates the question list and builds a catalog. Text questions
// without an explicit MaxLength get DefaultMaxLength.
func New(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, errors.New("catalog requires at least one question")
	}
	byID := make(map[int]Question, len(questions))
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question id %d: ids must be positive", q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("question id %d: duplicate id", q.ID)
		}
		switch q.Type {
		case TypeRating:
			if q.Scale < 2 {
				return nil, fmt.Errorf("question id %d: rating scale must be at least 2, got %d", q.ID, q.Scale)
			}
		case TypeText:
			if q.MaxLength <= 0 {
				q.MaxLength = DefaultMaxLength
			}
		default:
			return nil, fmt.Errorf("question id %d: unknown type %q", q.ID, q.Type)
		}
		byID[q.ID] = q
		out = append(out, q)
	}
	return &Catalog{questions: out, byID: byID}, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// At returns the question at position i. The caller is expected to pass an
// index already clamped into range; see ClampIndex.
func (c *Catalog) At(i int) Question { return c.questions[c.ClampIndex(i)] }

// ByID looks a question up by its stable id.
func (c *Catalog) ByID(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Questions returns a copy of the ordered question list.
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// ClampIndex forces i into [0, Len()-1]. Out-of-range navigation indexes
// are a low-stakes UI cursor problem, so they are clamped rather than
// rejected.
func (c *Catalog) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if max := len(c.questions) - 1; i > max {
		return max
	}
	return i
}
