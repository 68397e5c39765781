package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 5 {
		t.Fatalf("default catalog length = %d, want 5", c.Len())
	}

	q, ok := c.ByID(3)
	if !ok {
		t.Fatalf("question 3 missing")
	}
	if q.Type != TypeRating || q.Scale != 10 {
		t.Fatalf("question 3 = %q scale %d, want rating scale 10", q.Type, q.Scale)
	}
	if q.ScaleLabels[1] != "Not at all likely" || q.ScaleLabels[10] != "Extremely likely" {
		t.Fatalf("question 3 labels = %v", q.ScaleLabels)
	}

	q, ok = c.ByID(5)
	if !ok {
		t.Fatalf("question 5 missing")
	}
	if q.Type != TypeText || q.MaxLength != 500 {
		t.Fatalf("question 5 = %q max %d, want text max 500", q.Type, q.MaxLength)
	}

	for _, q := range c.Questions() {
		if q.Required {
			t.Fatalf("question %d is required; the stock catalog is all-optional", q.ID)
		}
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name      string
		questions []Question
	}{
		{name: "empty", questions: nil},
		{name: "nonpositive id", questions: []Question{{ID: 0, Type: TypeText, Prompt: "p"}}},
		{name: "duplicate id", questions: []Question{
			{ID: 1, Type: TypeText, Prompt: "a"},
			{ID: 1, Type: TypeText, Prompt: "b"},
		}},
		{name: "scale too small", questions: []Question{{ID: 1, Type: TypeRating, Prompt: "p", Scale: 1}}},
		{name: "unknown type", questions: []Question{{ID: 1, Type: "slider", Prompt: "p"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.questions); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestTextMaxLengthDefault(t *testing.T) {
	c, err := New([]Question{{ID: 1, Type: TypeText, Prompt: "p"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	q, _ := c.ByID(1)
	if q.MaxLength != DefaultMaxLength {
		t.Fatalf("max length = %d, want %d", q.MaxLength, DefaultMaxLength)
	}
}

func TestClampIndex(t *testing.T) {
	c := Default()
	cases := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{2, 2},
		{4, 4},
		{5, 4},
		{99, 4},
	}
	for _, tc := range cases {
		if got := c.ClampIndex(tc.in); got != tc.want {
			t.Fatalf("ClampIndex(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
questions:
  - id: 1
    type: rating
    prompt: How was the onboarding?
    scale: 7
    scale_labels:
      1: Awful
      7: Great
  - id: 2
    type: text
    prompt: Anything to add?
    placeholder: Tell us more...
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("length = %d, want 2", c.Len())
	}
	q, _ := c.ByID(1)
	if q.Scale != 7 || q.ScaleLabels[7] != "Great" {
		t.Fatalf("question 1 = scale %d labels %v", q.Scale, q.ScaleLabels)
	}
	q, _ = c.ByID(2)
	if q.MaxLength != DefaultMaxLength {
		t.Fatalf("text question did not pick up the default max length, got %d", q.MaxLength)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("questions: [")); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
