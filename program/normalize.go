package program

import "strings"

// Normalize drops every character that is not a space, a tab or a newline.
func Normalize(src string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n':
			return r
		default:
			return -1
		}
	}, src)
}

// FromSTL turns text written in S/T/L notation into whitespace source.
// S is a space, T a tab and L a newline; other characters are dropped.
func FromSTL(src string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'S':
			return ' '
		case 'T':
			return '\t'
		case 'L':
			return '\n'
		default:
			return -1
		}
	}, src)
}
