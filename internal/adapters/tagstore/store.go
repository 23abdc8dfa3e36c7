// Package tagstore implements the tag state store: one file per tag holding
// the epoch milliseconds of its last permitted run, as a bare integer.
package tagstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/zerr"
)

// hashedPrefix marks tag files whose names were not filesystem-safe and were
// replaced by a content digest.
const hashedPrefix = "xx-"

// Store implements ports.TagStore with a file-per-tag layout under a single
// data directory.
type Store struct {
	dataDir string
}

// NewStore creates the data directory if needed and returns a Store over it.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "dir", dataDir)
	}
	return &Store{dataDir: dataDir}, nil
}

// Exists reports whether the tag has a recorded run.
func (s *Store) Exists(tag string) bool {
	_, err := os.Stat(s.Path(tag))
	return err == nil
}

// Read returns the previously persisted timestamp for the tag.
func (s *Store) Read(tag string) (domain.Milliseconds, error) {
	path := s.Path(tag)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, zerr.With(zerr.Wrap(domain.ErrTagNotFound, "no recorded run"), "tag", tag)
		}
		return 0, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "tag", tag)
	}
	return parseMillis(data, tag)
}

// Write persists the timestamp for the tag. When a value is already recorded
// it is snapshotted to a sibling file first so Restore can bring it back.
func (s *Store) Write(tag string, value domain.Milliseconds) error {
	path := s.Path(tag)

	if previous, err := os.ReadFile(path); err == nil {
		snapshot := path + domain.SnapshotSuffix
		if err := os.WriteFile(snapshot, previous, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "tag", tag)
		}
	}

	payload := []byte(strconv.FormatUint(uint64(value), 10))
	if err := os.WriteFile(path, payload, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "tag", tag)
	}
	return nil
}

// Restore replaces the tag's timestamp with its last snapshot.
func (s *Store) Restore(tag string) error {
	snapshot := s.Path(tag) + domain.SnapshotSuffix
	data, err := os.ReadFile(snapshot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrNoSnapshot, "nothing to restore"), "tag", tag)
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "tag", tag)
	}

	// Validate before writing so a corrupt snapshot never clobbers the tag.
	if _, err := parseMillis(data, tag); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(tag), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "tag", tag)
	}
	return nil
}

// Path returns the file backing the tag. Names that are safe to use as a
// filename map directly so the path stays scriptable; anything else maps to
// a stable xxhash digest.
func (s *Store) Path(tag string) string {
	return filepath.Join(s.dataDir, filename(tag))
}

// List returns the names of all tags with a recorded run, as stored on disk:
// tags with unsafe names appear under their digest filename.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreListFailed, err.Error()), "dir", s.dataDir)
	}

	var tags []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() ||
			strings.HasSuffix(name, domain.SnapshotSuffix) ||
			strings.HasSuffix(name, domain.LockSuffix) {
			continue
		}
		tags = append(tags, name)
	}
	return tags, nil
}

func parseMillis(data []byte, tag string) (domain.Milliseconds, error) {
	text := strings.TrimSpace(string(data))
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		corrupt := zerr.Wrap(domain.ErrStoreReadFailed, "tag file does not hold a timestamp")
		corrupt = zerr.With(corrupt, "tag", tag)
		return 0, zerr.With(corrupt, "contents", text)
	}
	return domain.Milliseconds(value), nil
}

func filename(tag string) string {
	if safeFilename(tag) || digestName(tag) {
		return tag
	}
	return fmt.Sprintf("%s%016x", hashedPrefix, xxhash.Sum64String(tag))
}

// digestName reports whether tag is already an on-disk digest filename, as
// List returns for tags with unsafe names. Such names map to their file
// directly so List results round-trip through Read and Path.
func digestName(tag string) bool {
	if len(tag) != len(hashedPrefix)+16 || !strings.HasPrefix(tag, hashedPrefix) {
		return false
	}
	for i := len(hashedPrefix); i < len(tag); i++ {
		c := tag[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// safeFilename accepts names that cannot traverse directories or collide
// with the store's own suffixes.
func safeFilename(tag string) bool {
	if tag == "" || strings.HasPrefix(tag, ".") || strings.HasPrefix(tag, hashedPrefix) {
		return false
	}
	if strings.HasSuffix(tag, domain.SnapshotSuffix) || strings.HasSuffix(tag, domain.LockSuffix) {
		return false
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
