package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// prompter asks line-based questions. When input runs out every question
// takes its default.
type prompter struct {
	r   *bufio.Reader
	w   io.Writer
	eof bool
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

func (p *prompter) readLine() (string, error) {
	if p.eof {
		return "", nil
	}
	line, err := p.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		p.eof = true
		fmt.Fprintln(p.w)
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Ask returns the answer, or def for an empty one.
func (p *prompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s %s ", styles.question.Render("?"), question+styles.muted.Render(" ("+def+")"))
	} else {
		fmt.Fprintf(p.w, "%s %s ", styles.question.Render("?"), question)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (p *prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.w, "%s %s %s ", styles.question.Render("?"), question, styles.muted.Render("("+hint+")"))
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.w, styles.warn.Render("  Please answer y or n."))
	}
}

// Choose asks for one of options.
func (p *prompter) Choose(question string, options []string, def string) (string, error) {
	for {
		answer, err := p.Ask(fmt.Sprintf("%s [%s]", question, strings.Join(options, "/")), def)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		if slices.Contains(options, answer) {
			return answer, nil
		}
		fmt.Fprintln(p.w, styles.warn.Render(fmt.Sprintf("  Choose one of: %s.", strings.Join(options, ", "))))
		if p.eof {
			return "", fmt.Errorf("invalid answer %q", answer)
		}
	}
}
