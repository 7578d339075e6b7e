package program

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrFileNotFound is returned when the program file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ReadFile returns the raw text of a program file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// LoadFile reads and lexes a whitespace program.
func LoadFile(path string) (Program, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Lex(src)
}

// LoadFileSTL reads and lexes a program written in S/T/L notation.
func LoadFileSTL(path string) (Program, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Lex(FromSTL(src))
}
