// Package i18n holds the user-facing text of the tool in every supported
// language. A Translator is created per command from the board language;
// there is no process-wide current language.
package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/yarlson/go-taskcli/internal/deadline"
)

// supported lists the available languages; the first is the fallback.
var supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}

var (
	matcher = language.NewMatcher(supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	register(b, language.AmericanEnglish, english, englishCounted)
	register(b, language.BrazilianPortuguese, portuguese, portugueseCounted)
	return b
}

func register(b *catalog.Builder, tag language.Tag, msgs map[string]string, counts map[string]counted) {
	for key, msg := range msgs {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: %s %s: %v", tag, key, err))
		}
	}
	for key, c := range counts {
		msg := plural.Selectf(1, "%d", plural.One, c.one, plural.Other, c.other)
		if err := b.Set(tag, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: %s %s: %v", tag, key, err))
		}
	}
}

// Match returns the supported language closest to lang. Empty, invalid or
// unsupported input yields American English.
func Match(lang string) language.Tag {
	if lang == "" {
		return supported[0]
	}

	desired, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}

	_, idx, conf := matcher.Match(desired)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Supported reports whether lang names, or is close to, a supported
// language.
func Supported(lang string) bool {
	desired, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(desired)
	return conf != language.No
}

// Normalize maps lang onto a supported language code, e.g. "pt" to "pt-BR".
func Normalize(lang string) string {
	return Match(lang).String()
}

// Languages returns the codes of all supported languages.
func Languages() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}

// DisplayName returns the name of lang in that language, e.g. "português".
func DisplayName(lang string) string {
	tag := Match(lang)
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// Translator formats messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the supported language closest to lang.
func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T formats the message registered under key with args.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Language returns the language code, e.g. "en-US".
func (t *Translator) Language() string {
	return t.tag.String()
}

// DateOrder returns how dates are written in this language.
func (t *Translator) DateOrder() deadline.Order {
	return deadline.OrderFor(t.Language())
}

// Weekdays returns abbreviated weekday names starting on Sunday.
func (t *Translator) Weekdays() []string {
	return slices.Clone(weekdays[t.Language()])
}

// Title title-cases s using this language's rules.
func (t *Translator) Title(s string) string {
	return cases.Title(t.tag).String(s)
}
