// Package shell connects the DoxHub session to the terminal: it reads lines through
// ishell, wires the configured collaborators and starts the session loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
)

// lineReader is the part of ishell.Shell used for input.
type lineReader interface {
	SetPrompt(prompt string)
	ReadLineErr() (string, error)
}

// Prompter reads one line per prompt from an ishell line editor.
type Prompter struct {
	reader lineReader
	closer func()
}

// NewPrompter creates a prompter on the terminal.
func NewPrompter() *Prompter {
	sh := ishell.New()
	return &Prompter{reader: sh, closer: sh.Close}
}

func newPrompterWithReader(reader lineReader) *Prompter {
	return &Prompter{reader: reader}
}

// Prompt shows "label: " and returns the line typed by the user. Interrupts and end of
// input are reported as io.EOF.
func (p *Prompter) Prompt(label string) (string, error) {
	p.reader.SetPrompt(label + ": ")
	line, err := p.reader.ReadLineErr()
	if err != nil {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the terminal.
func (p *Prompter) Close() {
	if p.closer != nil {
		p.closer()
	}
}

// LinePrompter reads answers from a non-interactive source such as a pipe or a
// script file. Each prompt and answer is echoed so the output reads like a session.
type LinePrompter struct {
	scanner *bufio.Scanner
	echo    io.Writer
}

// NewLinePrompter creates a prompter reading one answer per line from r. A nil echo
// disables echoing.
func NewLinePrompter(r io.Reader, echo io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(r), echo: echo}
}

// Prompt returns the next line of input, or io.EOF when the input is exhausted.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", io.EOF, err)
		}
		return "", io.EOF
	}
	line := strings.TrimRight(p.scanner.Text(), "\r")
	if p.echo != nil {
		_, _ = fmt.Fprintf(p.echo, "%s: %s\n", label, line)
	}
	return line, nil
}
