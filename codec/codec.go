// Package codec converts between integers and the sign-magnitude bit
// strings that Whitespace uses for numbers.
//
// A bit string is written with '0' and '1'. In source text a space is a 0
// bit and a tab is a 1 bit. The first bit of a number is its sign (0 for
// non-negative, 1 for negative); the rest is a big-endian magnitude.
package codec

import (
	"errors"
	"math/bits"
	"strings"
)

// Bits is a string made of '0' and '1'.
type Bits string

// ErrOutOfRange is returned when a magnitude does not fit in an int64.
var ErrOutOfRange = errors.New("number out of range")

// ErrBadBit is returned when a bit string holds anything but '0' and '1'.
var ErrBadBit = errors.New("invalid bit")

// MaxMagnitudeBits is the widest magnitude Decode accepts.
const MaxMagnitudeBits = 63

// Decode converts a sign-magnitude bit string into an integer. An empty
// string and a lone sign bit both decode to 0.
func Decode(b Bits) (int64, error) {
	if len(b) == 0 {
		return 0, nil
	}

	negative := false
	switch b[0] {
	case '0':
	case '1':
		negative = true
	default:
		return 0, ErrBadBit
	}

	magnitude, err := DecodeUnsigned(b[1:])
	if err != nil {
		return 0, err
	}

	if negative {
		return -magnitude, nil
	}

	return magnitude, nil
}

// DecodeUnsigned converts a big-endian magnitude without a sign bit.
func DecodeUnsigned(b Bits) (int64, error) {
	var v uint64
	width := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, ErrBadBit
		}

		if v != 0 {
			width++
		}
		if width > MaxMagnitudeBits {
			return 0, ErrOutOfRange
		}
	}

	return int64(v), nil
}

// Encode converts an integer into a sign bit followed by the minimal
// magnitude. Zero encodes as a lone sign bit.
func Encode(n int64) Bits {
	var sb strings.Builder

	var magnitude uint64
	if n < 0 {
		sb.WriteByte('1')
		magnitude = uint64(-n)
	} else {
		sb.WriteByte('0')
		magnitude = uint64(n)
	}

	for i := bits.Len64(magnitude) - 1; i >= 0; i-- {
		if magnitude&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return Bits(sb.String())
}

// FromWhitespace maps spaces to 0 bits and tabs to 1 bits. Any other
// character is rejected.
func FromWhitespace(s string) (Bits, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			out[i] = '0'
		case '\t':
			out[i] = '1'
		default:
			return "", ErrBadBit
		}
	}

	return Bits(out), nil
}

// Whitespace renders the bits as spaces and tabs.
func (b Bits) Whitespace() string {
	out := make([]byte, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '1' {
			out[i] = '\t'
		} else {
			out[i] = ' '
		}
	}

	return string(out)
}

func (b Bits) String() string {
	return string(b)
}
