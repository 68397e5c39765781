package session

import "errors"

var (
	// ErrNoActiveSession is returned by mutating operations when no
	// session is current. Callers recover by redirecting to the start
	// screen and creating a fresh session.
	ErrNoActiveSession = errors.New("no active session")
	// ErrAlreadyCompleted flags a mutation attempted on a session that has
	// already reached its terminal state.
	ErrAlreadyCompleted = errors.New("session already completed")
	// ErrUnknownQuestion is returned when an answer references an id that
	// is not in the catalog.
	ErrUnknownQuestion = errors.New("question not in catalog")
	// ErrInvalidValue flags an answer value that does not fit the
	// question: a rating outside [1, scale], or a value of the wrong kind.
	ErrInvalidValue = errors.New("invalid answer value")
)
