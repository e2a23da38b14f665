package app

import (
	"errors"
	"io"
)

// ErrorReader is a custom io.Reader that returns errors for testing.
type ErrorReader struct {
	data    []byte
	pos     int
	err     error
	errSent bool
}

// NewErrorReader creates a reader that returns an error once its data is
// exhausted.
func NewErrorReader(data string, err error) *ErrorReader {
	return &ErrorReader{
		data: []byte(data),
		err:  err,
	}
}

func (r *ErrorReader) Read(p []byte) (n int, err error) {
	if r.errSent {
		return 0, io.EOF
	}

	if r.pos >= len(r.data) {
		r.errSent = true
		return 0, r.err
	}

	toRead := len(p)
	if remaining := len(r.data) - r.pos; toRead > remaining {
		toRead = remaining
	}

	copy(p, r.data[r.pos:r.pos+toRead])
	r.pos += toRead
	return toRead, nil
}

// ErrMockRead is a test error for reader failures.
var ErrMockRead = errors.New("mock read error")
