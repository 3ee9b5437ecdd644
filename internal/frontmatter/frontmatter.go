// Package frontmatter reads and writes markdown documents that start with a
// YAML metadata block delimited by "---" lines.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes the metadata block.
const Delimiter = "---"

// ErrMalformed is returned when a metadata block exists but is not a valid
// YAML mapping.
var ErrMalformed = errors.New("malformed frontmatter")

// SyntaxError wraps ErrMalformed with the underlying parser error.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed frontmatter: %v", e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

// Metadata is the open key/value view of a metadata block. Keys this package
// does not know about are carried through untouched.
type Metadata map[string]any

// Clone returns a shallow copy of m. A nil receiver yields an empty map.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// keyOrder is the order known keys are written in. Remaining keys follow
// in lexical order.
var keyOrder = []string{"id", "title", "category", "priority", "deadline", "status", "archived"}

// Decode splits text into its metadata and body.
//
// Text without a metadata block decodes to empty metadata and the text
// itself as body. When the block is present but unparsable, Decode still
// returns empty metadata and the full text, together with a *SyntaxError.
// The body of a well-formed document is trimmed of surrounding whitespace.
func Decode(text string) (Metadata, string, error) {
	block, body, ok := split(text)
	if !ok {
		return Metadata{}, text, nil
	}

	meta := Metadata{}
	if strings.TrimSpace(block) == "" {
		return meta, strings.TrimSpace(body), nil
	}

	var raw any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return Metadata{}, text, &SyntaxError{Err: err}
	}

	switch v := raw.(type) {
	case nil:
	case map[string]any:
		for k, val := range v {
			meta[k] = val
		}
	case map[any]any:
		// Non-string keys such as "2024: note" are kept under their text.
		for k, val := range v {
			meta[fmt.Sprint(k)] = val
		}
	default:
		return Metadata{}, text, &SyntaxError{Err: fmt.Errorf("expected a mapping, got %T", raw)}
	}

	return meta, strings.TrimSpace(body), nil
}

// Encode renders meta as a metadata block followed by body. The body is
// trimmed and separated from the block by one blank line.
func Encode(body string, meta Metadata) (string, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range orderedKeys(meta) {
		value := &yaml.Node{}
		if err := value.Encode(meta[key]); err != nil {
			return "", fmt.Errorf("encode %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			value,
		)
	}

	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")
	if len(node.Content) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return "", fmt.Errorf("encode metadata: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode metadata: %w", err)
		}
	}
	buf.WriteString(Delimiter + "\n")

	if body = strings.TrimSpace(body); body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

// split returns the raw metadata block and the remaining text. ok is false
// when text does not open with a delimiter line or the block never closes.
func split(text string) (block, body string, ok bool) {
	first, rest, found := cutLine(text)
	if !found && first == "" {
		return "", "", false
	}
	if strings.TrimRight(first, " \t\r") != Delimiter {
		return "", "", false
	}

	var lines []string
	for {
		line, next, more := cutLine(rest)
		if strings.TrimRight(line, " \t\r") == Delimiter {
			return strings.Join(lines, "\n"), next, true
		}
		if !more {
			return "", "", false
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		rest = next
	}
}

func cutLine(s string) (line, rest string, more bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func orderedKeys(meta Metadata) []string {
	keys := make([]string, 0, len(meta))
	seen := make(map[string]bool, len(keyOrder))
	for _, k := range keyOrder {
		if _, ok := meta[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	var rest []string
	for k := range meta {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}
