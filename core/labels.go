package core

import (
	"fmt"

	"github.com/sarchlab/wsvm/codec"
	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

// LabelTable maps a label key to the address of the instruction that follows
// its mark.
type LabelTable map[codec.Bits]int

// ResolveLabels scans a program for mark_label instructions. When a key is
// marked more than once, the last mark wins.
func ResolveLabels(p program.Program) LabelTable {
	labels := make(LabelTable)
	for i, inst := range p {
		if inst.Command == instr.Mark {
			labels[inst.Label] = i + 1
		}
	}
	return labels
}

// Lookup returns the jump target of a label.
func (l LabelTable) Lookup(key codec.Bits) (int, error) {
	target, ok := l[key]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUndefinedLabel, string(key))
	}
	return target, nil
}
