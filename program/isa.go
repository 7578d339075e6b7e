package program

import (
	"sort"

	"github.com/sarchlab/wsvm/instr"
)

type categoryCode struct {
	code     string
	category instr.Category
}

type commandCode struct {
	code    string
	command instr.Command
}

// ISA holds the prefix codes of an instruction set. Category codes and the
// command codes within each category are prefix-free, so at most one code
// matches at any position.
type ISA struct {
	// name of the ISA.
	isaName string

	categories []categoryCode
	commands   map[instr.Category][]commandCode

	encoding map[instr.Command]string
}

// NewISA creates an empty instruction set.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:  name,
		commands: make(map[instr.Category][]commandCode),
		encoding: make(map[instr.Command]string),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

func (isa *ISA) registerCategory(code string, category instr.Category) {
	isa.categories = append(isa.categories, categoryCode{code, category})
	sort.SliceStable(isa.categories, func(i, j int) bool {
		return len(isa.categories[i].code) < len(isa.categories[j].code)
	})
}

// registerNewInst adds a command code to the table of the command's
// category. The category code must already be registered.
func (isa *ISA) registerNewInst(code string, cmd instr.Command) {
	category := cmd.Category()

	prefix, ok := isa.categoryPrefix(category)
	if !ok {
		panic("category " + category.String() + " is not registered")
	}

	codes := append(isa.commands[category], commandCode{code, cmd})
	sort.SliceStable(codes, func(i, j int) bool {
		return len(codes[i].code) < len(codes[j].code)
	})
	isa.commands[category] = codes
	isa.encoding[cmd] = prefix + code
}

func (isa *ISA) categoryPrefix(category instr.Category) (string, bool) {
	for _, c := range isa.categories {
		if c.category == category {
			return c.code, true
		}
	}
	return "", false
}

func (isa *ISA) matchCategory(src string) (instr.Category, int, bool) {
	for _, c := range isa.categories {
		if hasPrefix(src, c.code) {
			return c.category, len(c.code), true
		}
	}
	return 0, 0, false
}

func (isa *ISA) matchCommand(
	category instr.Category,
	src string,
) (instr.Command, int, bool) {
	for _, c := range isa.commands[category] {
		if hasPrefix(src, c.code) {
			return c.command, len(c.code), true
		}
	}
	return 0, 0, false
}

// Encoding returns the full opcode (category and command code) of a
// command.
func (isa *ISA) Encoding(cmd instr.Command) (string, bool) {
	code, ok := isa.encoding[cmd]
	return code, ok
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
