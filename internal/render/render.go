// Package render draws the board, calendar and task views as terminal
// text. Rendering is pure: callers pass in records, board settings and the
// current time, and print the returned string.
package render

import (
	"time"

	"github.com/yarlson/go-taskcli/internal/i18n"
)

// Default view settings.
const (
	DefaultWidth = 80
	DefaultTheme = "dark"
)

// Renderer holds what every view needs: the language, the terminal width
// and the markdown theme.
type Renderer struct {
	t     *i18n.Translator
	width int
	theme string
	now   time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the total width views lay themselves out in.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithTheme sets the glamour style used for task bodies, e.g. "dark",
// "light" or "notty".
func WithTheme(theme string) Option {
	return func(r *Renderer) {
		if theme != "" {
			r.theme = theme
		}
	}
}

// WithNow sets the time deadlines and the calendar are measured against.
func WithNow(now time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer that writes in t's language.
func New(t *i18n.Translator, opts ...Option) *Renderer {
	r := &Renderer{
		t:     t,
		width: DefaultWidth,
		theme: DefaultTheme,
		now:   time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
