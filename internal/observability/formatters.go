// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ergosmind/mindstyle-server/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReportSummary outputs a human-readable summary of a laid-out
// report: recipient, styles, page count, and instruction breakdown.
func (p *Printer) PrintReportSummary(result *types.AssessmentResult, instrs []types.Instruction) {
	if result == nil {
		return
	}

	pages := 1
	var texts, wrapped, lines, rects, images int
	for _, in := range instrs {
		switch in.(type) {
		case types.PageBreak:
			pages++
		case types.Text:
			texts++
		case types.WrappedText:
			wrapped++
		case types.Line:
			lines++
		case types.Rect:
			rects++
		case types.Image:
			images++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recipient: %s <%s>\n", result.Name, result.Email))
	sb.WriteString(fmt.Sprintf("Dominant:  %s\n", strings.Join(result.DominantStyles, ", ")))
	if result.SupportingStyle != "" {
		sb.WriteString(fmt.Sprintf("Support:   %s\n", result.SupportingStyle))
	}
	if result.BalanceMessage != "" {
		sb.WriteString("Balance:   yes\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Pages:        %d\n", pages))
	sb.WriteString(fmt.Sprintf("Instructions: %d\n", len(instrs)))
	sb.WriteString(fmt.Sprintf("  text: %d  wrapped: %d  lines: %d  rects: %d  images: %d",
		texts, wrapped, lines, rects, images))

	p.printBox("Report Summary", sb.String())
}
