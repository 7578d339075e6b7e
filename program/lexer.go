package program

import (
	"errors"
	"strings"

	"github.com/sarchlab/wsvm/codec"
	"github.com/sarchlab/wsvm/instr"
)

const nearWidth = 8

// Lex converts source text into a program with the default ISA.
func Lex(src string) (Program, error) {
	return defaultISA.Lex(src)
}

// Lex normalizes src and converts it into a program. It fails on the first
// sequence that is not a valid instruction; no partial program is
// returned.
func (isa *ISA) Lex(src string) (Program, error) {
	l := lexer{isa: isa, src: Normalize(src)}

	var p Program
	for l.pos < len(l.src) {
		inst, err := l.next()
		if err != nil {
			return nil, err
		}
		p = append(p, inst)
	}

	return p, nil
}

type lexer struct {
	isa *ISA
	src string
	pos int
}

func (l *lexer) next() (instr.Inst, error) {
	start := l.pos

	category, n, ok := l.isa.matchCategory(l.src[l.pos:])
	if !ok {
		return instr.Inst{}, l.fail(start, ErrUnrecognizedCategory)
	}
	l.pos += n

	cmd, n, ok := l.isa.matchCommand(category, l.src[l.pos:])
	if !ok {
		return instr.Inst{}, l.fail(start, ErrUnrecognizedCommand)
	}
	l.pos += n

	switch cmd.Param() {
	case instr.ParamNumber:
		payload, err := l.param(start)
		if err != nil {
			return instr.Inst{}, err
		}
		arg, err := decodeNumber(payload)
		if err != nil {
			return instr.Inst{}, l.fail(start, err)
		}
		return instr.WithArg(cmd, arg), nil
	case instr.ParamLabel:
		payload, err := l.param(start)
		if err != nil {
			return instr.Inst{}, err
		}
		label, err := codec.FromWhitespace(payload)
		if err != nil {
			return instr.Inst{}, l.fail(start, err)
		}
		return instr.WithLabel(cmd, label), nil
	default:
		return instr.New(cmd), nil
	}
}

// param consumes up to and including the next newline and returns what
// came before it.
func (l *lexer) param(start int) (string, error) {
	end := strings.IndexByte(l.src[l.pos:], '\n')
	if end < 0 {
		return "", l.fail(start, ErrMissingTerminator)
	}

	payload := l.src[l.pos : l.pos+end]
	l.pos += end + 1

	return payload, nil
}

func decodeNumber(payload string) (int64, error) {
	bits, err := codec.FromWhitespace(payload)
	if err != nil {
		return 0, err
	}

	n, err := codec.Decode(bits)
	if errors.Is(err, codec.ErrOutOfRange) {
		return 0, ErrNumberOutOfRange
	}

	return n, err
}

func (l *lexer) fail(pos int, err error) *LexError {
	end := pos + nearWidth
	if end > len(l.src) {
		end = len(l.src)
	}

	return &LexError{
		Pos:  pos,
		Near: instr.ToSTL(l.src[pos:end]),
		Err:  err,
	}
}
