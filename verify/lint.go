package verify

import (
	"fmt"

	"github.com/sarchlab/wsvm/codec"
	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

// RunLint performs all static checks. Label issues come first, then flow
// issues, each group in program order.
func RunLint(p program.Program) []Issue {
	var issues []Issue

	issues = append(issues, checkLabels(p)...)
	issues = append(issues, checkTermination(p)...)
	issues = append(issues, checkUnreachable(p)...)

	return issues
}

func isReference(cmd instr.Command) bool {
	switch cmd {
	case instr.Call, instr.Jump, instr.JumpZero, instr.JumpNegative:
		return true
	}
	return false
}

// isTransfer reports whether control never reaches the next instruction.
func isTransfer(cmd instr.Command) bool {
	switch cmd {
	case instr.Jump, instr.Return, instr.End:
		return true
	}
	return false
}

func checkLabels(p program.Program) []Issue {
	var issues []Issue

	marks := make(map[codec.Bits]int)
	for pc, inst := range p {
		if inst.Command != instr.Mark {
			continue
		}

		if first, ok := marks[inst.Label]; ok {
			issues = append(issues, Issue{
				Type:     IssueLabel,
				Severity: SeverityWarning,
				PC:       pc,
				Message: fmt.Sprintf(
					"label %q redefined, pc %d is shadowed", inst.Label, first),
				Details: map[string]interface{}{
					"label": inst.Label,
					"first": first,
				},
			})
		}
		marks[inst.Label] = pc
	}

	for pc, inst := range p {
		if !isReference(inst.Command) {
			continue
		}

		if _, ok := marks[inst.Label]; !ok {
			issues = append(issues, Issue{
				Type:     IssueLabel,
				Severity: SeverityError,
				PC:       pc,
				Message: fmt.Sprintf(
					"%s refers to undefined label %q", inst.Command, inst.Label),
				Details: map[string]interface{}{
					"label": inst.Label,
				},
			})
		}
	}

	return issues
}

func checkTermination(p program.Program) []Issue {
	var issues []Issue

	hasEnd := false
	for _, inst := range p {
		if inst.Command == instr.End {
			hasEnd = true
			break
		}
	}

	if !hasEnd {
		issues = append(issues, Issue{
			Type:     IssueFlow,
			Severity: SeverityWarning,
			PC:       -1,
			Message:  "program has no end_program",
		})
	}

	if len(p) > 0 && !isTransfer(p[len(p)-1].Command) {
		last := len(p) - 1
		issues = append(issues, Issue{
			Type:     IssueFlow,
			Severity: SeverityWarning,
			PC:       last,
			Message: fmt.Sprintf(
				"execution can run past the last instruction (%s)", p[last]),
		})
	}

	return issues
}

// checkUnreachable reports each run of instructions that follows an
// unconditional transfer and contains no label. Only the first
// instruction of a run is reported.
func checkUnreachable(p program.Program) []Issue {
	var issues []Issue

	for pc := 1; pc < len(p); pc++ {
		if !isTransfer(p[pc-1].Command) || p[pc].Command == instr.Mark {
			continue
		}

		end := pc
		for end < len(p) && p[end].Command != instr.Mark {
			end++
		}

		issues = append(issues, Issue{
			Type:     IssueFlow,
			Severity: SeverityWarning,
			PC:       pc,
			Message: fmt.Sprintf(
				"%d unreachable instruction(s) after %s", end-pc, p[pc-1]),
			Details: map[string]interface{}{
				"count": end - pc,
			},
		})

		pc = end
	}

	return issues
}
