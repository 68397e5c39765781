package session

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	completedAt := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	original := &Session{
		SessionID:            IDPrefix + "1748779200000_abc123def",
		StartTime:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:               StatusCompleted,
		CurrentQuestionIndex: 4,
		Answers: map[int]Answer{
			1: {Value: Rating(4), AnsweredAt: time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC)},
			3: {Value: Skip(), AnsweredAt: time.Date(2025, 6, 1, 12, 2, 0, 0, time.UTC)},
			5: {Value: Text("more self-service docs please"), AnsweredAt: time.Date(2025, 6, 1, 12, 3, 0, 0, time.UTC)},
		},
		CompletedAt: &completedAt,
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Session
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, &decoded) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", &decoded, original)
	}
}

func TestRecordShape(t *testing.T) {
	s := &Session{
		SessionID:            IDPrefix + "1748779200000_abc123def",
		StartTime:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:               StatusInProgress,
		CurrentQuestionIndex: 1,
		Answers: map[int]Answer{
			2: {Value: Skip(), AnsweredAt: time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC)},
		},
		CompletedAt: nil,
	}
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, field := range []string{"sessionId", "startTime", "status", "currentQuestionIndex", "answers", "completedAt"} {
		if _, ok := rec[field]; !ok {
			t.Fatalf("record missing field %q", field)
		}
	}
	if string(rec["status"]) != `"IN_PROGRESS"` {
		t.Fatalf("status = %s, want \"IN_PROGRESS\"", rec["status"])
	}
	if string(rec["completedAt"]) != "null" {
		t.Fatalf("completedAt = %s, want null", rec["completedAt"])
	}

	var answers map[string]map[string]json.RawMessage
	if err := json.Unmarshal(rec["answers"], &answers); err != nil {
		t.Fatalf("unmarshal answers: %v", err)
	}
	entry, ok := answers["2"]
	if !ok {
		t.Fatalf("answers not keyed by question id string: %s", rec["answers"])
	}
	if string(entry["value"]) != "null" {
		t.Fatalf("skip value = %s, want null", entry["value"])
	}
}

func TestAnswerValueForms(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		rating int
		text   string
		skip   bool
		bad    bool
	}{
		{name: "rating", raw: "4", rating: 4},
		{name: "text", raw: `"loved it"`, text: "loved it"},
		{name: "null", raw: "null", skip: true},
		{name: "fraction", raw: "4.5", bad: true},
		{name: "object", raw: "{}", bad: true},
		{name: "bool", raw: "true", bad: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v AnswerValue
			err := json.Unmarshal([]byte(tc.raw), &v)
			if tc.bad {
				if err == nil {
					t.Fatalf("expected unmarshal of %s to fail", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			switch {
			case tc.skip:
				if !v.IsSkip() {
					t.Fatalf("expected skip")
				}
			case tc.text != "":
				if s, ok := v.Text(); !ok || s != tc.text {
					t.Fatalf("text = %q ok=%v, want %q", s, ok, tc.text)
				}
			default:
				if n, ok := v.Rating(); !ok || n != tc.rating {
					t.Fatalf("rating = %d ok=%v, want %d", n, ok, tc.rating)
				}
			}

			out, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("marshal back: %v", err)
			}
			if string(out) != tc.raw {
				t.Fatalf("marshal = %s, want %s", out, tc.raw)
			}
		})
	}
}
