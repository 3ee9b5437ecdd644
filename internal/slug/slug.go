// Package slug derives filesystem-safe record names from task titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Fallback is used when a title produces no usable characters.
const Fallback = "untitled-task"

// Extension is the file extension of every task record.
const Extension = ".md"

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)
	hyphensRe    = regexp.MustCompile(`-{2,}`)
)

// Slug lower-cases and trims title, turns whitespace runs into single
// hyphens, strips anything outside [A-Za-z0-9_-] and collapses repeated
// hyphens.
func Slug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = hyphensRe.ReplaceAllString(s, "-")

	if s == "" {
		return Fallback
	}
	return s
}

// NewID returns the creation identifier for a record created at t:
// milliseconds since the Unix epoch.
func NewID(t time.Time) int64 {
	return t.UnixMilli()
}

// CleanID strips everything outside [A-Za-z0-9_-] from a creation
// identifier so it can start a filename.
func CleanID(id any) string {
	return invalidRe.ReplaceAllString(fmt.Sprint(id), "")
}

// Filename joins a creation identifier and the slug of title into a record
// filename such as "1739812345678-buy-groceries.md".
func Filename(id any, title string) string {
	return fmt.Sprintf("%s-%s%s", CleanID(id), Slug(title), Extension)
}
