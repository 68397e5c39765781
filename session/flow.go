package session

import "github.com/pulseform/pulseform/catalog"

// NavResult is the outcome of a navigation step.
type NavResult struct {
	// Index is the effective question index after the step.
	Index int
	// Confirm is set when Next runs off the last question: the session is
	// not mutated and the presentation layer should show the confirmation
	// step instead.
	Confirm bool
}

// Flow realizes the linear navigation contract on top of the Manager's
// primitives. The Manager itself knows nothing about "skip" or the
// confirmation step; those rules live here, on the consumer side.
type Flow struct {
	mgr *Manager
}

// NewFlow wraps a manager in the linear navigation sequencer.
func NewFlow(m *Manager) *Flow { return &Flow{mgr: m} }

// CurrentQuestion returns the question under the navigation cursor and the
// effective (clamped) index.
func (f *Flow) CurrentQuestion() (catalog.Question, int, error) {
	s, err := f.mgr.active()
	if err != nil {
		return catalog.Question{}, 0, err
	}
	idx := f.mgr.cat.ClampIndex(s.CurrentQuestionIndex)
	return f.mgr.cat.At(idx), idx, nil
}

// Next advances the cursor by one and persists. On the last question the
// cursor stays put and the result signals the confirmation step.
func (f *Flow) Next() (NavResult, error) {
	s, err := f.mgr.active()
	if err != nil {
		return NavResult{}, err
	}
	idx := f.mgr.cat.ClampIndex(s.CurrentQuestionIndex)
	if idx >= f.mgr.cat.Len()-1 {
		return NavResult{Index: idx, Confirm: true}, nil
	}
	moved, err := f.mgr.SetQuestionIndex(idx + 1)
	if err != nil {
		return NavResult{}, err
	}
	return NavResult{Index: moved}, nil
}

// Back retreats the cursor by one and persists. At index 0 it is a no-op.
func (f *Flow) Back() (NavResult, error) {
	s, err := f.mgr.active()
	if err != nil {
		return NavResult{}, err
	}
	idx := f.mgr.cat.ClampIndex(s.CurrentQuestionIndex)
	if idx == 0 {
		return NavResult{Index: 0}, nil
	}
	moved, err := f.mgr.SetQuestionIndex(idx - 1)
	if err != nil {
		return NavResult{}, err
	}
	return NavResult{Index: moved}, nil
}

// Skip stores an explicit skip for the current question, then performs
// Next.
func (f *Flow) Skip() (NavResult, error) {
	q, _, err := f.CurrentQuestion()
	if err != nil {
		return NavResult{}, err
	}
	if err := f.mgr.SaveAnswer(q.ID, Skip()); err != nil {
		return NavResult{}, err
	}
	return f.Next()
}
