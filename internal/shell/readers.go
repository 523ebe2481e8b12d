package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/doky-sim/doky-cli/internal/errors"
)

var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . | bold }}{{ \">\" | bold }} ",
	Valid:   "{{ . | bold }}{{ \">\" | bold }} ",
	Invalid: "{{ . | bold }}{{ \">\" | bold }} ",
	Success: "{{ . | faint }}{{ \">\" | faint }} ",
}

// PromptReader reads lines from a terminal with line editing. Nil streams
// default to the process's standard streams.
type PromptReader struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (r PromptReader) ReadLine(prompt string) (string, error) {
	p := promptui.Prompt{
		Label:     prompt,
		Stdin:     r.Stdin,
		Stdout:    r.Stdout,
		Templates: promptTemplates,
	}

	line, err := p.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}

// ScanReader reads lines from any stream, for piped input and scripts.
type ScanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	echo    bool
}

// NewScanReader prints prompts to out. With echo set, each line read is
// printed after its prompt so the output reads like a terminal transcript.
func NewScanReader(in io.Reader, out io.Writer, echo bool) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(in), out: out, echo: echo}
}

func (r *ScanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(r.out, "%s> ", prompt)

	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		if err := r.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "unable to read input")
		}
		return "", io.EOF
	}

	line := r.scanner.Text()
	if r.echo {
		fmt.Fprintln(r.out, line)
	}

	return line, nil
}
