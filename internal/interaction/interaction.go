// Package interaction provides interactive primitives for CLI prompts
// and TTY detection, keeping command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter asks the operator yes/no questions.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdinPrompter prompts on stderr and reads answers from In.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinPrompter returns a Prompter wired to os.Stdin/os.Stderr.
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{In: os.Stdin, Out: os.Stderr}
}

// Confirm prints a confirmation prompt and returns true for yes.
// Only the first character matters and matching is case-insensitive,
// so "y", "Y", "yes" and "Yeah" all confirm. Anything else declines.
func (p *StdinPrompter) Confirm(message string) (bool, error) {
	reader := bufio.NewReader(p.In)
	fmt.Fprintf(p.Out, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return strings.HasPrefix(trimmed, "y"), nil
}
