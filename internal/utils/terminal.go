package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/gistenv/internal/errors"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret prompts on stderr and reads a line from stdin without echoing it.
// Returns an error if stdin is not a terminal.
func ReadSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("cannot read secret: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// ReadLine prompts on w and reads one line from r.
func ReadLine(w io.Writer, r io.Reader, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Prompter asks questions on Out and reads answers from In. It keeps one
// buffered reader so several questions can share a piped stdin.
type Prompter struct {
	Out io.Writer
	In  *bufio.Reader
}

// NewPrompter returns a Prompter on w and r.
func NewPrompter(w io.Writer, r io.Reader) *Prompter {
	return &Prompter{Out: w, In: bufio.NewReader(r)}
}

// Line asks for free text. An empty answer returns def.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.Out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.Out, "%s: ", label)
	}
	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if line = strings.TrimSpace(line); line == "" {
		return def, nil
	}
	return line, nil
}

// Choose lists options numbered from 1 and returns the picked one. An empty
// answer picks def when def is one of the options.
func (p *Prompter) Choose(label string, options []string, def string) (string, error) {
	p.list(label, options)
	answer, err := p.Line("Choice", def)
	if err != nil {
		return "", err
	}
	picked, err := pick(answer, options)
	if err != nil {
		return "", err
	}
	return picked, nil
}

// ChooseMany lists options and accepts several numbers or names separated by
// commas or spaces, or "all".
func (p *Prompter) ChooseMany(label string, options []string) ([]string, error) {
	p.list(label, options)
	answer, err := p.Line("Choices (e.g. 1,3 or all)", "")
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(answer, "all") {
		return append([]string(nil), options...), nil
	}

	fields := strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing selected", kerrors.ErrInvalidChoice)
	}

	seen := make(map[string]bool)
	var picked []string
	for _, f := range fields {
		opt, err := pick(f, options)
		if err != nil {
			return nil, err
		}
		if !seen[opt] {
			seen[opt] = true
			picked = append(picked, opt)
		}
	}
	return picked, nil
}

func (p *Prompter) list(label string, options []string) {
	fmt.Fprintln(p.Out, label)
	for i, opt := range options {
		fmt.Fprintf(p.Out, "  %d) %s\n", i+1, opt)
	}
}

// pick resolves answer as a 1-based index or an exact option name.
func pick(answer string, options []string) (string, error) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		return "", fmt.Errorf("%w: %d is not between 1 and %d", kerrors.ErrInvalidChoice, n, len(options))
	}
	for _, opt := range options {
		if opt == answer {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", kerrors.ErrInvalidChoice, answer)
}
