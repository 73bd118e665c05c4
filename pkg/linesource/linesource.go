package linesource

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest line a source accepts, terminator excluded.
const MaxLineSize = 1 << 20

const initialBufferSize = 64 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxLineSize+len("\r\n"))

	return scanner
}

// line returns the current line of scanner. The buffer leaves room for a
// "\r\n" terminator, so a line one byte over MaxLineSize still fits in it and
// is rejected here.
func line(scanner *bufio.Scanner) (string, error) {
	if len(scanner.Bytes()) > MaxLineSize {
		return "", bufio.ErrTooLong
	}

	return scanner.Text(), nil
}

// Scan sends every line of r to out. It stops early when ctx is done and
// returns ctx.Err().
func Scan(ctx context.Context, r io.Reader, out chan<- string) error {
	scanner := newScanner(r)

	for scanner.Scan() {
		text, err := line(scanner)
		if err != nil {
			return &Error{Op: "read", Err: err}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- text:
		}
	}

	if err := scanner.Err(); err != nil {
		return &Error{Op: "read", Err: err}
	}

	return nil
}

// ReadLines returns every line of the file at path.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	lines := []string{}
	scanner := newScanner(file)

	for scanner.Scan() {
		text, err := line(scanner)
		if err != nil {
			return nil, &Error{Op: "read", Path: path, Err: err}
		}

		lines = append(lines, text)
	}

	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}

	return lines, nil
}

// scanFile streams the file at path to out. The file is closed before
// returning, whatever the outcome.
func scanFile(ctx context.Context, path string, out chan<- string) error {
	file, err := os.Open(path)
	if err != nil {
		return &Error{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	err = Scan(ctx, file, out)

	var lineErr *Error
	if errors.As(err, &lineErr) {
		lineErr.Path = path
	}

	return err
}
