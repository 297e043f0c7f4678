package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ergosmind/mindstyle-server/internal/types"
)

func summaryResult() *types.AssessmentResult {
	return &types.AssessmentResult{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		DominantStyles:  []string{"A", "C"},
		SupportingStyle: "E",
		BalanceMessage:  "Closely balanced.",
		Counts:          map[string]int{"A": 9, "B": 4, "C": 8, "D": 2, "E": 5},
	}
}

func TestPrintReportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	instrs := []types.Instruction{
		types.Rect{},
		types.Text{Content: "Mindstyle Assessment"},
		types.Image{Name: types.LogoImage},
		types.PageBreak{Page: 2},
		types.Text{Content: "heading"},
		types.Line{},
		types.WrappedText{Lines: []string{"a", "b"}},
		types.PageBreak{Page: 3},
	}
	p.PrintReportSummary(summaryResult(), instrs)

	out := buf.String()
	assert.Contains(t, out, "Report Summary")
	assert.Contains(t, out, "Jane Doe <jane@example.com>")
	assert.Contains(t, out, "A, C")
	assert.Contains(t, out, "Support:   E")
	assert.Contains(t, out, "Balance:   yes")
	assert.Contains(t, out, "Pages:        3")
	assert.Contains(t, out, "Instructions: 8")
	assert.Contains(t, out, "text: 2  wrapped: 1  lines: 1  rects: 1  images: 1")
}

func TestPrintReportSummary_MinimalResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := summaryResult()
	res.SupportingStyle = ""
	res.BalanceMessage = ""
	p.PrintReportSummary(res, nil)

	out := buf.String()
	assert.NotContains(t, out, "Support:")
	assert.NotContains(t, out, "Balance:")
	assert.Contains(t, out, "Pages:        1")
}

func TestPrintReportSummary_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReportSummary(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("Title", "short\n"+string(bytes.Repeat([]byte("x"), 200)))

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		assert.LessOrEqual(t, len(bytes.Runes(line)), boxWidth, "box lines stay within the frame")
	}
	assert.Contains(t, buf.String(), "...")
}