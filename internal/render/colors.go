package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps board colour names onto the basic ANSI palette.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
	"gray":    lipgloss.Color("8"),
	"grey":    lipgloss.Color("8"),
}

// Color resolves a board colour name or "#rrggbb" value. Anything else
// leaves the terminal default in place.
func Color(name string) lipgloss.TerminalColor {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c
	}
	if len(name) == 7 && strings.HasPrefix(name, "#") {
		return lipgloss.Color(name)
	}
	return lipgloss.NoColor{}
}

// ContrastText picks black or white text for a named background colour.
// Unknown backgrounds keep the terminal default.
func ContrastText(background string) lipgloss.TerminalColor {
	switch strings.ToLower(strings.TrimSpace(background)) {
	case "yellow", "cyan", "white":
		return namedColors["black"]
	case "red", "blue", "green", "magenta", "gray", "grey", "black":
		return namedColors["white"]
	default:
		return lipgloss.NoColor{}
	}
}
