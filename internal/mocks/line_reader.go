package mocks

import "io"

// LineReader hands out Lines one at a time and then returns Err, io.EOF by default.
type LineReader struct {
	Lines  []string
	Err    error
	Closed bool
}

func (r *LineReader) ReadLine() (string, error) {
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

func (r *LineReader) Close() error {
	r.Closed = true
	return nil
}
