// Package taskstore persists task records as markdown files with a YAML
// metadata block, one file per task.
package taskstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yarlson/go-taskcli/internal/frontmatter"
)

// Metadata keys written by this tool.
const (
	KeyID       = "id"
	KeyTitle    = "title"
	KeyCategory = "category"
	KeyPriority = "priority"
	KeyDeadline = "deadline"
	KeyStatus   = "status"
	KeyArchived = "archived"
)

// DefaultPriority is assigned to records created without one.
const DefaultPriority = "medium"

// Record is the typed view of one task file.
type Record struct {
	// ID is the creation identifier, usually milliseconds since the epoch.
	ID string

	// Filename addresses the record in the store and never changes.
	Filename string

	// Title falls back to Filename when the metadata has none.
	Title string

	Category string
	Priority string
	Status   string

	// Deadline is YYYY-MM-DD or empty.
	Deadline string

	Archived bool

	// Body is the markdown text after the metadata block.
	Body string

	// RawContent is the file text exactly as read.
	RawContent string

	// Meta holds every metadata key, including ones not mapped above.
	Meta frontmatter.Metadata
}

// newRecord builds the typed view over decoded metadata.
func newRecord(filename, raw string, meta frontmatter.Metadata, body string) *Record {
	r := &Record{
		ID:         stringValue(meta[KeyID]),
		Filename:   filename,
		Title:      stringValue(meta[KeyTitle]),
		Category:   stringValue(meta[KeyCategory]),
		Priority:   stringValue(meta[KeyPriority]),
		Status:     stringValue(meta[KeyStatus]),
		Deadline:   stringValue(meta[KeyDeadline]),
		Archived:   boolValue(meta[KeyArchived]),
		Body:       body,
		RawContent: raw,
		Meta:       meta,
	}
	if r.Title == "" {
		r.Title = filename
	}
	return r
}

// Encode re-serialises the record with its current metadata. Unknown keys
// in Meta are written back unchanged.
func (r *Record) Encode() (string, error) {
	return frontmatter.Encode(r.Body, r.Meta)
}

// With returns a copy of r whose metadata has key set to value. r itself
// is not modified.
func (r *Record) With(key string, value any) *Record {
	meta := r.Meta.Clone()
	meta[key] = value

	return newRecord(r.Filename, r.RawContent, meta, r.Body)
}

// NewTask carries the fields of a record being created.
type NewTask struct {
	ID          int64
	Title       string
	Category    string
	Priority    string
	Deadline    string
	Status      string
	Description string
}

// BuildDocument renders the initial file text for a new task. The body
// starts with a "# heading" line followed by the description, if any.
func BuildDocument(task NewTask, heading string) (string, error) {
	priority := task.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	meta := frontmatter.Metadata{
		KeyID:       task.ID,
		KeyTitle:    task.Title,
		KeyCategory: task.Category,
		KeyPriority: priority,
		KeyDeadline: task.Deadline,
		KeyStatus:   task.Status,
	}

	var body strings.Builder
	body.WriteString("# " + heading + "\n\n")
	if task.Description != "" {
		body.WriteString(task.Description)
		body.WriteString("\n")
	}

	return frontmatter.Encode(body.String(), meta)
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func boolValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}
