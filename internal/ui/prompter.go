// Package ui implements the plain-console side of the interactive run
// flow: line-oriented prompts and the index/range selection syntax used
// to pick files from the scan listing.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter reads line-oriented answers from the user.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over stdin/stdout.
func NewPrompter() *Prompter {
	return NewPrompterWithIO(os.Stdin, os.Stdout)
}

// NewPrompterWithIO creates a prompter over arbitrary streams.
// Primarily useful for testing the prompt flow with scripted input.
func NewPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt and returns the trimmed answer line.
// EOF before any input yields an empty answer, matching how the flow
// treats an empty line (abort or default).
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskWithDefault prints the prompt and returns the answer, or the
// fallback when the answer is empty.
func (p *Prompter) AskWithDefault(prompt, fallback string) (string, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// Confirm asks a y/n question. Only "y" (case-insensitive) confirms.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Println writes a line to the prompt output stream.
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes formatted text to the prompt output stream.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}
