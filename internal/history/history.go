// Package history provides persistence for REPL input lines.
package history

// Entry is one evaluated REPL line.
type Entry struct {
	Input  string
	Result string
	When   int64 // Unix seconds
}

// Store is the interface for input history.
type Store interface {
	// Append records an evaluated line. A zero When is stamped with the
	// current time.
	Append(e Entry) error
	// Recent returns entries newest first. A limit <= 0 returns all.
	Recent(limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
