package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pulseform/pulseform/session"
)

// currentSessionKey holds the id of the active session. It carries no
// session.IDPrefix, so maintenance scans never mistake it for a record.
const currentSessionKey = "currentSessionId"

// Repository persists sessions as JSON records in a KV store, one record
// per session keyed by session id, plus the single active-session pointer.
// It implements session.Repository.
type Repository struct {
	kv KV
}

var _ session.Repository = (*Repository)(nil)

// NewRepository builds a typed session repository over the given store.
func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// Load fetches one session. A missing record returns (nil, nil); a record
// that fails to parse is reported and treated as missing, so the caller
// can fall back to a fresh session instead of faulting.
func (r *Repository) Load(id string) (*session.Session, error) {
	raw, ok, err := r.kv.Get(id)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	s, err := decodeSession(raw)
	if err != nil {
		log.Printf("session repository: decode %s: %v", id, err)
		return nil, nil
	}
	return s, nil
}

// Save writes the session record, replacing any prior value.
func (r *Repository) Save(s *session.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.SessionID, err)
	}
	if err := r.kv.Set(s.SessionID, string(raw)); err != nil {
		return fmt.Errorf("save session %s: %w", s.SessionID, err)
	}
	return nil
}

// Delete removes the session record.
func (r *Repository) Delete(id string) error {
	if err := r.kv.Remove(id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// List scans every stored session record. Malformed records are reported
// and skipped; they never abort the rest of the scan. Filtering and
// ordering are left to the caller.
func (r *Repository) List() ([]*session.Session, error) {
	keys, err := r.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("enumerate sessions: %w", err)
	}
	out := []*session.Session{}
	for _, key := range keys {
		if !strings.HasPrefix(key, session.IDPrefix) {
			continue
		}
		raw, ok, err := r.kv.Get(key)
		if err != nil {
			log.Printf("session repository: read %s: %v", key, err)
			continue
		}
		if !ok {
			continue
		}
		s, err := decodeSession(raw)
		if err != nil {
			log.Printf("session repository: decode %s: %v", key, err)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// CurrentID reads the active-session pointer.
func (r *Repository) CurrentID() (string, bool, error) {
	id, ok, err := r.kv.Get(currentSessionKey)
	if err != nil {
		return "", false, fmt.Errorf("read session pointer: %w", err)
	}
	return id, ok, nil
}

// SetCurrentID points the active-session reference at id.
func (r *Repository) SetCurrentID(id string) error {
	if err := r.kv.Set(currentSessionKey, id); err != nil {
		return fmt.Errorf("set session pointer: %w", err)
	}
	return nil
}

// ClearCurrentID removes the active-session pointer.
func (r *Repository) ClearCurrentID() error {
	if err := r.kv.Remove(currentSessionKey); err != nil {
		return fmt.Errorf("clear session pointer: %w", err)
	}
	return nil
}

func decodeSession(raw string) (*session.Session, error) {
	var s session.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	if s.SessionID == "" {
		return nil, fmt.Errorf("record has no session id")
	}
	return &s, nil
}
