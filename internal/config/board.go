package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option is one configurable board entry: a status column, a category or
// a priority.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Board is the shared board document: columns, categories, priorities and
// display language.
type Board struct {
	Language   string   `json:"language,omitempty"`
	Statuses   []Option `json:"statuses"`
	Categories []Option `json:"categories"`
	Priorities []Option `json:"priorities,omitempty"`
}

// Lang returns the board language, or DefaultLanguage when unset.
func (b *Board) Lang() string {
	if b.Language == "" {
		return DefaultLanguage
	}
	return b.Language
}

// Status looks up a status column by id.
func (b *Board) Status(id string) (Option, bool) {
	return find(b.Statuses, id)
}

// Category looks up a category by id.
func (b *Board) Category(id string) (Option, bool) {
	return find(b.Categories, id)
}

// Priority looks up a priority by id.
func (b *Board) Priority(id string) (Option, bool) {
	return find(b.Priorities, id)
}

// AddCategory appends a category named name, normalised to a lower-case
// id with a title-cased label. It returns false if the id already exists.
func (b *Board) AddCategory(name string) (Option, bool) {
	id := strings.ToLower(strings.TrimSpace(name))
	if existing, ok := b.Category(id); ok {
		return existing, false
	}

	opt := Option{ID: id, Label: titleCase(id), Color: DefaultCategoryColor}
	b.Categories = append(b.Categories, opt)
	return opt, true
}

func find(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// rawBoard mirrors Board but accepts categories in either the current
// object form or the legacy plain string form.
type rawBoard struct {
	Language   string            `json:"language,omitempty"`
	Statuses   []Option          `json:"statuses"`
	Categories []json.RawMessage `json:"categories"`
	Priorities []Option          `json:"priorities"`
}

// BoardStore reads and writes the board document.
type BoardStore struct {
	path   string
	logger *log.Logger
}

// NewBoardStore creates a BoardStore for the document at path. Warnings
// about corrupt or outdated documents go to logger; nil discards them.
func NewBoardStore(path string, logger *log.Logger) *BoardStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BoardStore{path: path, logger: logger}
}

// Path returns the document location.
func (s *BoardStore) Path() string {
	return s.path
}

// Exists reports whether the document is present on disk.
func (s *BoardStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load always returns a usable Board. A missing document yields an empty
// board; a corrupt one is logged and treated as missing. Legacy string
// categories are upgraded and the upgrade is written back immediately.
// Missing priorities are filled with the defaults in the returned value
// only.
func (s *BoardStore) Load() *Board {
	board, migrated := s.read()

	if migrated {
		if err := s.Save(board); err != nil {
			s.logger.Warn("could not save migrated board", "path", s.path, "err", err)
		} else {
			s.logger.Info("migrated legacy categories", "path", s.path)
		}
	}

	if len(board.Priorities) == 0 {
		board.Priorities = DefaultPriorities(board.Lang())
	}

	return board
}

// read parses the document. migrated is true when any category was in the
// legacy string form.
func (s *BoardStore) read() (board *Board, migrated bool) {
	empty := &Board{Statuses: []Option{}, Categories: []Option{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("could not read board", "path", s.path, "err", err)
		}
		return empty, false
	}

	var raw rawBoard
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("board document is corrupt, using defaults", "path", s.path, "err", err)
		return empty, false
	}

	board = &Board{
		Language:   raw.Language,
		Statuses:   raw.Statuses,
		Categories: make([]Option, 0, len(raw.Categories)),
		Priorities: raw.Priorities,
	}
	if board.Statuses == nil {
		board.Statuses = []Option{}
	}

	for _, item := range raw.Categories {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			board.Categories = append(board.Categories, Option{
				ID:    name,
				Label: titleCase(name),
				Color: DefaultCategoryColor,
			})
			migrated = true
			continue
		}

		var opt Option
		if err := json.Unmarshal(item, &opt); err != nil {
			s.logger.Warn("skipping unreadable category", "path", s.path, "value", string(item))
			continue
		}
		board.Categories = append(board.Categories, opt)
	}

	return board, migrated
}

// Save writes the whole document, pretty-printed, replacing the old one.
func (s *BoardStore) Save(board *Board) error {
	out := *board
	if out.Statuses == nil {
		out.Statuses = []Option{}
	}
	if out.Categories == nil {
		out.Categories = []Option{}
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create board directory: %w", err)
	}

	if err := atomic.WriteFile(s.path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Bootstrap writes the default board in lang and returns it.
func (s *BoardStore) Bootstrap(lang string) (*Board, error) {
	board := DefaultBoard(lang)
	if err := s.Save(board); err != nil {
		return nil, err
	}
	return board, nil
}

// titleCase upper-cases the first letter of s and keeps the rest as is.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
