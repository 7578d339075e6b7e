package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/wsvm/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	InstCount   int
	LintIssues  []Issue
	LabelIssues []Issue
	FlowIssues  []Issue
	DryRun      DryRunResult
}

// GenerateReport runs both lint and a dry run, returns a report
func GenerateReport(
	p program.Program,
	input string,
	maxSteps int64,
) *VerificationReport {
	report := &VerificationReport{
		InstCount:  len(p),
		LintIssues: RunLint(p),
	}

	for _, issue := range report.LintIssues {
		if issue.Type == IssueLabel {
			report.LabelIssues = append(report.LabelIssues, issue)
		} else {
			report.FlowIssues = append(report.FlowIssues, issue)
		}
	}

	report.DryRun = DryRun(p, input, maxSteps)

	return report
}

// Passed reports whether lint found no errors and the dry run ended at
// end_program.
func (r *VerificationReport) Passed() bool {
	return !HasErrors(r.LintIssues) && r.DryRun.Err == nil
}

// WriteIssues writes the issues as a table.
func WriteIssues(w io.Writer, issues []Issue) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"PC", "Type", "Severity", "Message"})

	for _, issue := range issues {
		pc := "-"
		if issue.PC >= 0 {
			pc = fmt.Sprint(issue.PC)
		}
		t.AppendRow(table.Row{pc, issue.Type, issue.Severity, issue.Message})
	}

	t.Render()
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "WHITESPACE PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions: %d\n", r.InstCount)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		fmt.Fprintf(w, "Found %d lint issues (%d LABEL, %d FLOW):\n",
			len(r.LintIssues), len(r.LabelIssues), len(r.FlowIssues))
		WriteIssues(w, r.LintIssues)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: DRY RUN")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Steps: %d\n", r.DryRun.Steps)
	if r.DryRun.Err == nil {
		fmt.Fprintln(w, "Program reached end_program")
	} else {
		fmt.Fprintf(w, "Run error: %v\n", r.DryRun.Err)
	}

	if r.DryRun.Output != "" {
		fmt.Fprintf(w, "Output: %q\n", r.DryRun.Output)
	}

	fmt.Fprintln(w, "\n"+separator)
	if r.Passed() {
		fmt.Fprintln(w, "PASSED")
	} else {
		fmt.Fprintln(w, "FAILED")
	}
	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
