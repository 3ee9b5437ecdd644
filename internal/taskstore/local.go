package taskstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"

	"github.com/yarlson/go-taskcli/internal/frontmatter"
	"github.com/yarlson/go-taskcli/internal/slug"
)

var _ Store = (*LocalStore)(nil)

// LocalStore implements the Store interface using markdown files.
// Each task is stored as a separate .md file in the configured directory.
type LocalStore struct {
	dir    string
	now    func() time.Time
	logger *log.Logger
	mu     sync.RWMutex
}

// Option configures a LocalStore.
type Option func(*LocalStore)

// WithClock sets the time source used for new record identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *LocalStore) {
		s.now = now
	}
}

// WithLogger sets the logger that receives warnings about skipped files.
func WithLogger(logger *log.Logger) Option {
	return func(s *LocalStore) {
		s.logger = logger
	}
}

// NewLocalStore creates a LocalStore rooted at dir. The directory is not
// touched until the first write.
func NewLocalStore(dir string, opts ...Option) *LocalStore {
	s := &LocalStore{
		dir:    dir,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory the store reads and writes.
func (s *LocalStore) Dir() string {
	return s.dir
}

// taskPath returns the file path for a record. Only the base name of
// filename is used so a record can never escape the store directory.
func (s *LocalStore) taskPath(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Get retrieves a record by filename.
func (s *LocalStore) Get(filename string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getUnlocked(filename)
}

// getUnlocked retrieves a record without acquiring the lock.
// Caller must hold at least a read lock.
func (s *LocalStore) getUnlocked(filename string) (*Record, error) {
	data, err := os.ReadFile(s.taskPath(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Filename: filename}
		}
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	raw := string(data)
	meta, body, err := frontmatter.Decode(raw)
	if err != nil {
		return nil, &DecodeError{Filename: filename, Err: err}
	}

	return newRecord(filepath.Base(filename), raw, meta, body), nil
}

// List retrieves all records from the store. A missing directory yields
// an empty list. Files that fail to decode are logged and skipped.
func (s *LocalStore) List() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tasks directory: %w", err)
	}

	var records []*Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), slug.Extension) {
			continue
		}

		record, err := s.getUnlocked(entry.Name())
		if err != nil {
			s.logger.Warn("skipping task file", "file", entry.Name(), "err", err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Save writes content to filename, creating the store directory if needed.
func (s *LocalStore) Save(filename, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeUnlocked(filename, content)
}

// writeUnlocked replaces the file atomically.
// Caller must hold the write lock.
func (s *LocalStore) writeUnlocked(filename, content string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create tasks directory: %w", err)
	}

	if err := atomic.WriteFile(s.taskPath(filename), strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}

	return nil
}

// Create stores a new record document. The filename is derived from the
// document's id, reduced to [A-Za-z0-9_-], and title; an id is generated
// from the store clock when none is left. If the name is taken, a numeric
// suffix is added.
func (s *LocalStore) Create(content string) (string, error) {
	meta, _, err := frontmatter.Decode(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse task: %w", err)
	}

	id := slug.CleanID(stringValue(meta[KeyID]))
	if id == "" {
		id = fmt.Sprint(slug.NewID(s.now()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filename := s.uniqueFilename(slug.Filename(id, stringValue(meta[KeyTitle])))
	if err := s.writeUnlocked(filename, content); err != nil {
		return "", err
	}

	return filename, nil
}

// uniqueFilename returns name, or name with a "-N" suffix before the
// extension if a record already uses it.
// Caller must hold the write lock.
func (s *LocalStore) uniqueFilename(name string) string {
	if _, err := os.Stat(s.taskPath(name)); errors.Is(err, fs.ErrNotExist) {
		return name
	}

	base := strings.TrimSuffix(name, slug.Extension)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", base, i, slug.Extension)
		if _, err := os.Stat(s.taskPath(candidate)); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}

// UpdateStatus rewrites the status of an existing record.
func (s *LocalStore) UpdateStatus(filename, status string) error {
	return s.update(filename, KeyStatus, status)
}

// Archive marks an existing record as archived.
func (s *LocalStore) Archive(filename string) error {
	return s.update(filename, KeyArchived, true)
}

// update performs a read-modify-write of one metadata key.
func (s *LocalStore) update(filename, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getUnlocked(filename)
	if err != nil {
		return err
	}

	content, err := record.With(key, value).Encode()
	if err != nil {
		return fmt.Errorf("failed to encode task: %w", err)
	}

	return s.writeUnlocked(filename, content)
}

// Delete removes a record by filename.
func (s *LocalStore) Delete(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	taskFile := s.taskPath(filename)
	if _, err := os.Stat(taskFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Filename: filename}
		}
		return fmt.Errorf("failed to stat task file: %w", err)
	}

	if err := os.Remove(taskFile); err != nil {
		return fmt.Errorf("failed to delete task file: %w", err)
	}

	return nil
}
