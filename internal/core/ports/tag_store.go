// Package ports defines the interfaces between the core and its adapters.
package ports

import "go.trai.ch/evry/internal/core/domain"

// TagStore persists one epoch-millisecond timestamp per tag: the last time
// the tag's command was permitted to run.
//
// The store gives no atomicity guarantee across a read-decide-write sequence;
// callers running overlapping invocations of the same tag need the run lock.
//
//go:generate mockgen -source=tag_store.go -destination=mocks/mock_tag_store.go -package=mocks
type TagStore interface {
	// Exists reports whether the tag has a recorded run.
	Exists(tag string) bool

	// Read returns the previously persisted timestamp for the tag.
	Read(tag string) (domain.Milliseconds, error)

	// Write persists the timestamp for the tag, snapshotting any existing
	// value first so it can be restored.
	Write(tag string, value domain.Milliseconds) error

	// Restore replaces the tag's timestamp with its last snapshot.
	Restore(tag string) error

	// Path returns the filesystem location backing the tag.
	Path(tag string) string

	// List returns the names of all tags with a recorded run.
	List() ([]string, error)

	// Lock takes the tag's run lock for the duration of a read-decide-write
	// sequence, returning the release function. Fails when a live process
	// already holds the lock.
	Lock(tag string) (release func() error, err error)
}
