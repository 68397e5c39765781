package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pulseform/pulseform/catalog"
)

// Repository abstracts persistence operations required by the Manager.
// Load returns (nil, nil) when no record exists under the id; List skips
// records that fail to parse rather than aborting the scan.
type Repository interface {
	Load(id string) (*Session, error)
	Save(s *Session) error
	Delete(id string) error
	List() ([]*Session, error)
	CurrentID() (string, bool, error)
	SetCurrentID(id string) error
	ClearCurrentID() error
}

// Manager is the sole authority over session lifecycle and content. It
// assumes a single logical writer; each operation is one read-modify-write
// against the repository.
type Manager struct {
	repo  Repository
	cat   *catalog.Catalog
	now   func() time.Time
	idGen func(t time.Time) string
}

// NewManager constructs a manager bound to the given repository and
// question catalog.
func NewManager(repo Repository, cat *catalog.Catalog) *Manager {
	return &Manager{
		repo:  repo,
		cat:   cat,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: defaultSessionID,
	}
}

func defaultSessionID(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", IDPrefix, t.UnixMilli(), suffix)
}

// Catalog returns the question catalog the manager validates against.
func (m *Manager) Catalog() *catalog.Catalog { return m.cat }

// Create starts a fresh session, persists it, and makes it the active one.
// Any previously active session stays in the store but loses the active
// pointer.
func (m *Manager) Create() (*Session, error) {
	now := m.now()
	s := &Session{
		SessionID:            m.idGen(now),
		StartTime:            now,
		Status:               StatusInProgress,
		CurrentQuestionIndex: 0,
		Answers:              map[int]Answer{},
		CompletedAt:          nil,
	}
	if err := m.repo.Save(s); err != nil {
		return nil, fmt.Errorf("persist new session: %w", err)
	}
	if err := m.repo.SetCurrentID(s.SessionID); err != nil {
		return nil, fmt.Errorf("set active session: %w", err)
	}
	return s, nil
}

// Current returns the active session, or (nil, nil) when there is none or
// its record is gone. Pure read; a dangling pointer is left in place.
func (m *Manager) Current() (*Session, error) {
	id, ok, err := m.repo.CurrentID()
	if err != nil {
		return nil, fmt.Errorf("read active session pointer: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.repo.Load(id)
}

// active resolves the current session for a mutating operation.
func (m *Manager) active() (*Session, error) {
	s, err := m.Current()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNoActiveSession
	}
	return s, nil
}

// SaveAnswer upserts the answer for a question and persists the session.
// Re-answering overwrites the prior value and timestamp. A Skip value is
// stored explicitly, not treated as absence. Text is trimmed and truncated
// to the question's max length; an empty trimmed text becomes a skip.
func (m *Manager) SaveAnswer(questionID int, value AnswerValue) error {
	s, err := m.active()
	if err != nil {
		return err
	}
	if s.Completed() {
		return ErrAlreadyCompleted
	}
	q, ok := m.cat.ByID(questionID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownQuestion, questionID)
	}
	value, err = normalizeValue(q, value)
	if err != nil {
		return err
	}
	if s.Answers == nil {
		s.Answers = map[int]Answer{}
	}
	s.Answers[questionID] = Answer{Value: value, AnsweredAt: m.now()}
	if err := m.repo.Save(s); err != nil {
		return fmt.Errorf("persist answer: %w", err)
	}
	return nil
}

func normalizeValue(q catalog.Question, v AnswerValue) (AnswerValue, error) {
	if v.IsSkip() {
		return v, nil
	}
	switch q.Type {
	case catalog.TypeRating:
		n, ok := v.Rating()
		if !ok {
			return v, fmt.Errorf("%w: question %d expects a rating", ErrInvalidValue, q.ID)
		}
		if n < 1 || n > q.Scale {
			return v, fmt.Errorf("%w: rating %d outside [1, %d]", ErrInvalidValue, n, q.Scale)
		}
		return v, nil
	case catalog.TypeText:
		s, ok := v.Text()
		if !ok {
			return v, fmt.Errorf("%w: question %d expects text", ErrInvalidValue, q.ID)
		}
		s = strings.TrimSpace(s)
		if r := []rune(s); len(r) > q.MaxLength {
			s = string(r[:q.MaxLength])
		}
		if s == "" {
			return Skip(), nil
		}
		return Text(s), nil
	default:
		return v, fmt.Errorf("%w: question %d has unsupported type %q", ErrInvalidValue, q.ID, q.Type)
	}
}

// SetQuestionIndex moves the navigation cursor, clamping into catalog
// bounds, and persists. Returns the effective index.
func (m *Manager) SetQuestionIndex(index int) (int, error) {
	s, err := m.active()
	if err != nil {
		return 0, err
	}
	if s.Completed() {
		return s.CurrentQuestionIndex, ErrAlreadyCompleted
	}
	s.CurrentQuestionIndex = m.cat.ClampIndex(index)
	if err := m.repo.Save(s); err != nil {
		return s.CurrentQuestionIndex, fmt.Errorf("persist cursor: %w", err)
	}
	return s.CurrentQuestionIndex, nil
}

// Complete transitions the active session to its terminal state, persists
// the record, and clears the active pointer so the next Current returns no
// session. Completion is idempotent: a second call reports
// ErrAlreadyCompleted and leaves CompletedAt untouched.
func (m *Manager) Complete() (*Session, error) {
	s, err := m.active()
	if err != nil {
		return nil, err
	}
	if s.Completed() {
		return nil, ErrAlreadyCompleted
	}
	s.Status = StatusCompleted
	t := m.now()
	s.CompletedAt = &t
	if err := m.repo.Save(s); err != nil {
		return nil, fmt.Errorf("persist completion: %w", err)
	}
	if err := m.repo.ClearCurrentID(); err != nil {
		return nil, fmt.Errorf("clear active session: %w", err)
	}
	return s, nil
}

// Answer returns the stored value for a question on the active session and
// whether an entry exists. With no active session it reports not answered.
func (m *Manager) Answer(questionID int) (AnswerValue, bool, error) {
	s, err := m.Current()
	if err != nil {
		return AnswerValue{}, false, err
	}
	if s == nil {
		return AnswerValue{}, false, nil
	}
	a, ok := s.Answers[questionID]
	return a.Value, ok, nil
}

// IsAnswered reports whether an entry exists for the question, regardless
// of whether its value is an explicit skip.
func (m *Manager) IsAnswered(questionID int) (bool, error) {
	_, ok, err := m.Answer(questionID)
	return ok, err
}
