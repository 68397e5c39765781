package session

import (
	"fmt"
	"log"
	"sort"
)

// ListCompleted returns all completed sessions, most recently completed
// first. Records that fail to parse are skipped by the repository scan.
func (m *Manager) ListCompleted() ([]*Session, error) {
	all, err := m.repo.List()
	if err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	out := make([]*Session, 0, len(all))
	for _, s := range all {
		if s.Completed() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CompletedAt, out[j].CompletedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})
	return out, nil
}

// PurgeOlderThan deletes every session whose StartTime is strictly before
// now minus the given number of calendar days, and returns the number
// removed. PurgeOlderThan(0) removes sessions started strictly before now;
// a session created at the same instant stays. Cleanup is best-effort: a
// record that cannot be read or deleted is reported and skipped, never
// aborting the rest of the scan.
func (m *Manager) PurgeOlderThan(days int) (int, error) {
	cutoff := m.now().AddDate(0, 0, -days)
	all, err := m.repo.List()
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}
	removed := 0
	for _, s := range all {
		if !s.StartTime.Before(cutoff) {
			continue
		}
		if err := m.repo.Delete(s.SessionID); err != nil {
			log.Printf("session maintenance: delete %s: %v", s.SessionID, err)
			continue
		}
		removed++
	}
	return removed, nil
}
