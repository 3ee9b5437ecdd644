package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned by a prompt when input ends before an answer.
var ErrCancelled = errors.New("operation cancelled")

// Choice is one option offered by Select.
type Choice struct {
	Value string
	Label string
}

// Prompter asks questions on a line-oriented terminal. All prompts of a
// command must share one Prompter so buffered input is not lost.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Intro prints a section heading.
func (p *Prompter) Intro(title string) {
	_, _ = fmt.Fprintf(p.out, "\n%s\n\n", introStyle.Render(" "+title+" "))
}

// Text asks message and returns the trimmed answer. hint is shown after
// the question when set. If required is not empty, an empty answer prints
// required and asks again.
func (p *Prompter) Text(message, hint, required string) (string, error) {
	for {
		p.ask(message, hint)

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" || required == "" {
			return answer, nil
		}
		_, _ = fmt.Fprintln(p.out, warnStyle.Render(required))
	}
}

// Select lists choices numbered from 1 and returns the one picked. The
// answer may be the number, the value or the label, ignoring case. An
// empty answer picks def when def names a choice value.
func (p *Prompter) Select(message string, choices []Choice, def string) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, errors.New("nothing to choose from")
	}

	for {
		_, _ = fmt.Fprintln(p.out, questionStyle.Render("? "+message))
		for i, c := range choices {
			marker := " "
			if c.Value == def {
				marker = "*"
			}
			_, _ = fmt.Fprintf(p.out, " %s %d) %s\n", marker, i+1, c.Label)
		}
		_, _ = fmt.Fprint(p.out, "> ")

		answer, err := p.readLine()
		if err != nil {
			return Choice{}, err
		}

		if c, ok := pick(choices, answer, def); ok {
			return c, nil
		}
		_, _ = fmt.Fprintln(p.out, warnStyle.Render(fmt.Sprintf("1-%d?", len(choices))))
	}
}

// Confirm asks a yes/no question. An empty answer returns def. Yes is
// "y", "yes", "s" or "sim"; anything else is no.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	p.ask(message, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) ask(message, hint string) {
	q := questionStyle.Render("? " + message)
	if hint != "" {
		q += " " + hintStyle.Render("("+hint+")")
	}
	_, _ = fmt.Fprint(p.out, q+" ")
}

// readLine returns the next trimmed line. Input that ends without any
// text is a cancellation.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func pick(choices []Choice, answer, def string) (Choice, bool) {
	if answer == "" {
		for _, c := range choices {
			if def != "" && c.Value == def {
				return c, true
			}
		}
		return Choice{}, false
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return Choice{}, false
	}

	for _, c := range choices {
		if strings.EqualFold(c.Value, answer) || strings.EqualFold(c.Label, answer) {
			return c, true
		}
	}
	return Choice{}, false
}
