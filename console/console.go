// Package console provides the character and number I/O a running program
// talks to.
package console

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadChar when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 input")

// Console is the input and output of a running program.
type Console interface {
	// ReadChar blocks until one character is available. Pending output is
	// flushed first so that prompts are visible.
	ReadChar() (rune, error)

	// ReadLine blocks until a full line is available and returns it
	// without the line terminator. A final line without a newline is
	// returned as is.
	ReadLine() (string, error)

	// WriteChar writes a character.
	WriteChar(r rune) error

	// WriteNumber writes the decimal form of n.
	WriteNumber(n int64) error

	// Flush pushes buffered output to the underlying writer.
	Flush() error
}

// Std is a Console backed by a reader and a writer. Output is buffered and
// flushed at every newline and on Flush.
type Std struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New creates a Console reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Std {
	return &Std{
		in:  bufio.NewReader(r),
		out: bufio.NewWriter(w),
	}
}

// ReadChar reads one UTF-8 encoded character.
func (c *Std) ReadChar() (rune, error) {
	if err := c.out.Flush(); err != nil {
		return 0, err
	}

	r, size, err := c.in.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == utf8.RuneError && size == 1 {
		return 0, ErrInvalidUTF8
	}

	return r, nil
}

// ReadLine reads up to the next newline.
func (c *Std) ReadLine() (string, error) {
	if err := c.out.Flush(); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// WriteChar writes one character.
func (c *Std) WriteChar(r rune) error {
	if _, err := c.out.WriteRune(r); err != nil {
		return err
	}

	if r == '\n' {
		return c.out.Flush()
	}

	return nil
}

// WriteNumber writes n in decimal.
func (c *Std) WriteNumber(n int64) error {
	_, err := c.out.WriteString(strconv.FormatInt(n, 10))
	return err
}

// Flush writes out everything buffered so far.
func (c *Std) Flush() error {
	return c.out.Flush()
}
