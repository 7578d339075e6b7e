// Package samples bundles example programs written in S/T/L notation.
package samples

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/sarchlab/wsvm/program"
)

//go:embed *.stl
var files embed.FS

// Names lists the bundled programs, sorted.
func Names() []string {
	entries, err := fs.Glob(files, "*.stl")
	if err != nil {
		panic(err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, path.Ext(e)))
	}
	sort.Strings(names)

	return names
}

// Source returns the S/T/L text of a bundled program.
func Source(name string) (string, error) {
	data, err := files.ReadFile(name + ".stl")
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Load lexes a bundled program.
func Load(name string) (program.Program, error) {
	src, err := Source(name)
	if err != nil {
		return nil, err
	}

	return program.Lex(program.FromSTL(src))
}
