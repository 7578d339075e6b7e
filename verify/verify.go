// Package verify provides static checks and a bounded dry run for
// whitespace programs.
//
// Verification runs in two stages:
//
//  1. Lint (RunLint): label references, duplicate labels, a missing
//     end_program, fall-through past the last instruction and code that
//     can never be reached.
//  2. Dry run (DryRun): the program is executed on a scripted console with
//     a step limit, so a program that loops forever still terminates.
//
// GenerateReport runs both stages and WriteReport prints the result.
//
// # Usage Example
//
//	p, err := program.LoadFile("hello.ws")
//	if err != nil {
//	    return err
//	}
//
//	issues := verify.RunLint(p)
//	if verify.HasErrors(issues) {
//	    return verify.ErrLintFailed
//	}
//
//	report := verify.GenerateReport(p, "", 10000)
//	report.WriteReport(os.Stdout)
package verify

import (
	"errors"
	"fmt"
)

// ErrLintFailed is returned by callers that refuse to run a program with
// lint errors.
var ErrLintFailed = errors.New("lint failed")

// IssueType categorizes lint issues
type IssueType string

const (
	IssueLabel IssueType = "LABEL" // Label definition or reference problem
	IssueFlow  IssueType = "FLOW"  // Control flow problem
)

// Severity tells whether an issue makes a run fail for sure.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a single lint issue
type Issue struct {
	Type     IssueType
	Severity Severity
	PC       int // Instruction index or -1
	Message  string
	Details  map[string]interface{}
}

func (i Issue) String() string {
	if i.PC < 0 {
		return fmt.Sprintf("[%s %s] %s", i.Type, i.Severity, i.Message)
	}

	return fmt.Sprintf("[%s %s] pc %d: %s", i.Type, i.Severity, i.PC, i.Message)
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}

	return false
}
