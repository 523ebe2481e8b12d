package mocks

import (
	"io"
)

// LineReader replays Lines and records the prompt shown before each read.
// Once Lines is exhausted it returns Err, or io.EOF when Err is nil.
type LineReader struct {
	Lines   []string
	Err     error
	Prompts []string
}

func (r *LineReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)

	if len(r.Lines) == 0 {
		if r.Err != nil {
			return "", r.Err
		}
		return "", io.EOF
	}

	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}
