package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyDuration is returned when the duration text is blank after trimming.
	ErrEmptyDuration = zerr.New("empty duration")

	// ErrDurationSyntax is returned when the duration text does not conform to
	// the grammar (unknown unit, malformed quantity, stray tokens).
	ErrDurationSyntax = zerr.New("invalid duration syntax")

	// ErrDurationOverflow is returned when the accumulated millisecond total
	// exceeds the representable range.
	ErrDurationOverflow = zerr.New("duration overflows millisecond range")

	// ErrNotElapsed is returned by a run evaluation whose outcome forbids
	// execution. It is an expected condition, not a failure: the CLI layer
	// maps it to its own exit status and stays silent.
	ErrNotElapsed = zerr.New("duration has not elapsed since last run")

	// ErrEmptyTag is returned when a tag name is empty.
	ErrEmptyTag = zerr.New("tag name is empty")

	// ErrTagNotFound is returned when a tag has no recorded run.
	ErrTagNotFound = zerr.New("tag not found")

	// ErrStoreCreateFailed is returned when the tag data directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create tag data directory")

	// ErrStoreReadFailed is returned when a tag file cannot be read or its
	// contents are not a single non-negative integer.
	ErrStoreReadFailed = zerr.New("failed to read tag file")

	// ErrStoreWriteFailed is returned when a tag file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write tag file")

	// ErrStoreListFailed is returned when the tag data directory cannot be listed.
	ErrStoreListFailed = zerr.New("failed to list tag data directory")

	// ErrNoSnapshot is returned when a rollback is requested but no snapshot
	// of the previous run exists for the tag.
	ErrNoSnapshot = zerr.New("no snapshot recorded for tag")

	// ErrLockHeld is returned when the per-tag run lock is held by a live process.
	ErrLockHeld = zerr.New("tag is locked by another running process")

	// ErrLockFailed is returned when the per-tag run lock cannot be taken or released.
	ErrLockFailed = zerr.New("failed to manage tag lock file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDataDirUnresolvable is returned when no data directory can be determined.
	ErrDataDirUnresolvable = zerr.New("could not resolve data directory")
)
