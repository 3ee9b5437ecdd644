// Package query filters, orders and groups task records for display.
package query

import (
	"slices"
	"strings"

	"github.com/yarlson/go-taskcli/internal/deadline"
	"github.com/yarlson/go-taskcli/internal/taskstore"
)

// legacyArchivedStatuses are status values older versions used instead of
// the archived flag.
var legacyArchivedStatuses = map[string]bool{
	"archived":      true,
	"arquivado":     true,
	"done-archived": true,
}

// Criteria selects records. Zero values mean "no restriction".
type Criteria struct {
	// Status keeps records whose status equals it exactly.
	Status string

	// Category keeps records whose category contains it, ignoring case.
	Category string

	// Text keeps records whose raw file text contains it, ignoring case.
	Text string

	// IncludeArchived keeps archived records.
	IncludeArchived bool
}

// IsArchived reports whether r is archived, either by flag or by one of
// the legacy archived status values.
func IsArchived(r *taskstore.Record) bool {
	return r.Archived || legacyArchivedStatuses[r.Status]
}

// Filter returns the records matching c, newest first. Ordering is by
// filename, descending and lexicographic. records is not modified.
func Filter(records []*taskstore.Record, c Criteria) []*taskstore.Record {
	text := strings.ToLower(c.Text)
	category := strings.ToLower(c.Category)

	out := make([]*taskstore.Record, 0, len(records))
	for _, r := range records {
		if !c.IncludeArchived && IsArchived(r) {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(r.RawContent), text) {
			continue
		}
		if c.Status != "" && r.Status != c.Status {
			continue
		}
		if category != "" && (r.Category == "" || !strings.Contains(strings.ToLower(r.Category), category)) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b *taskstore.Record) int {
		return strings.Compare(b.Filename, a.Filename)
	})

	return out
}

// BucketByDeadline groups records by the date part of their deadline.
// Records without a deadline are left out. Within a bucket records keep
// the order they were given in.
func BucketByDeadline(records []*taskstore.Record) map[string][]*taskstore.Record {
	buckets := make(map[string][]*taskstore.Record)
	for _, r := range records {
		key := deadline.Canonical(r.Deadline)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], r)
	}
	return buckets
}

// GroupByStatus groups records by status, keeping their relative order.
func GroupByStatus(records []*taskstore.Record) map[string][]*taskstore.Record {
	groups := make(map[string][]*taskstore.Record)
	for _, r := range records {
		groups[r.Status] = append(groups[r.Status], r)
	}
	return groups
}
