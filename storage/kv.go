// Package storage provides the key-value store behind the survey session
// core and the typed session repository on top of it. Backends are
// swappable: in-memory for tests, a JSON file for durability across
// restarts, or an embedded SQLite database.
package storage

// KV is the narrow store contract the session core depends on. Set
// followed by Get on the same key observes the written value; there is no
// distributed-consistency promise beyond that. Keys is used only by
// maintenance scans.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
}
