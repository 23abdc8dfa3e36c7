package tagstore

import (
	"os"
	"strconv"
	"strings"
	"syscall"

	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lock is a per-tag PID lock file. The store itself gives no atomicity
// across read-decide-write; callers that run overlapping invocations of the
// same tag take this lock around the whole sequence.
type Lock struct {
	path string
}

// NewLock returns the lock for a tag in this store.
func (s *Store) NewLock(tag string) *Lock {
	return &Lock{path: s.Path(tag) + domain.LockSuffix}
}

// Lock acquires the tag's run lock and returns its release function.
func (s *Store) Lock(tag string) (func() error, error) {
	l := s.NewLock(tag)
	if err := l.Acquire(); err != nil {
		return nil, err
	}
	return l.Release, nil
}

// Acquire takes the lock, claiming stale locks left by dead processes.
// Returns ErrLockHeld when a live process holds it.
func (l *Lock) Acquire() error {
	if err := l.tryCreate(); err == nil || !os.IsExist(err) {
		return wrapLockErr(err)
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			// released between our create attempt and the read
			return wrapLockErr(l.tryCreate())
		}
		return wrapLockErr(err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err == nil && processExists(pid) {
		return zerr.With(zerr.Wrap(domain.ErrLockHeld, "lock file names a live process"), "pid", pid)
	}

	// Stale or garbage lock: remove and retry once.
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return wrapLockErr(err)
	}
	if err := l.tryCreate(); err != nil {
		if os.IsExist(err) {
			return domain.ErrLockHeld
		}
		return wrapLockErr(err)
	}
	return nil
}

// Release removes the lock file. Idempotent.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return wrapLockErr(err)
	}
	return nil
}

func (l *Lock) tryCreate() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}
	_, writeErr := f.WriteString(strconv.Itoa(os.Getpid()))
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(l.path)
		if writeErr != nil {
			return writeErr
		}
		return closeErr
	}
	return nil
}

func wrapLockErr(err error) error {
	if err == nil {
		return nil
	}
	return zerr.Wrap(domain.ErrLockFailed, err.Error())
}

// processExists checks for a live process via signal 0.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
