package rendering

import (
	"sync"

	"github.com/jung-kurt/gofpdf"

	"github.com/ergosmind/mindstyle-server/internal/types"
)

// Metrics measures text with the same core-font widths RenderPDF draws
// with, so line wrapping in the layout engine and the rendered output can
// never disagree about where lines break.
type Metrics struct {
	mu  sync.Mutex
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewMetrics returns a Metrics backed by a throwaway document used only
// for measurement.
func NewMetrics() *Metrics {
	pdf := gofpdf.New("P", "pt", "A4", "")
	return &Metrics{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// TextWidth returns the width of s in the given font, in points.
// Safe for concurrent use.
func (m *Metrics) TextWidth(f types.Font, s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	style := ""
	if f.Bold {
		style = "B"
	}
	m.pdf.SetFont(f.Family, style, f.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}
