// Package interact provides the interactive-input collaborator: yes/no
// confirmations and sentinel-terminated multi-line entry.
//
// On a terminal, confirmations use a huh form; when stdin is piped the
// fallback is a plain "[y/N]" line read so scripted invocations still work.
package interact

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Sentinel terminates multi-line content entry.
const Sentinel = "EOF"

// Prompter reads interactive input from in and writes prompts to out.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New creates a Prompter. Pass os.Stdin and os.Stderr for real use.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// Confirm asks a yes/no question and returns true only on an affirmative
// answer. Declines, EOF, and read errors all mean "no".
func (p *Prompter) Confirm(label string) bool {
	if p.isTerminal() {
		var ok bool
		err := huh.NewConfirm().
			Title(label).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		if err != nil {
			return false
		}
		return ok
	}

	fmt.Fprintf(p.out, "%s [y/N] ", label)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// CollectLines prints intro and reads lines until the sentinel line.
func (p *Prompter) CollectLines(intro string) ([]string, error) {
	fmt.Fprintln(p.out, intro)

	var lines []string
	for {
		line, err := p.reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == Sentinel {
			return lines, nil
		}
		if line != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if err == io.EOF {
				return lines, nil
			}
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
}

// isTerminal reports whether input comes from an interactive terminal.
func (p *Prompter) isTerminal() bool {
	file, ok := p.in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
