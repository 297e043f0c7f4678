// Package layout produces the ordered draw-instruction sequence for a
// Mindstyle assessment report: cover page, per-style sections, optional
// supporting and balance sections, and the fixed-order scores section,
// paginated across fixed-size pages with a header and footer on each.
package layout

import "github.com/ergosmind/mindstyle-server/internal/types"

// Geometry describes the fixed page dimensions, in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	HeaderHeight float64
	FooterHeight float64
	// ContentTop is the vertical offset content starts at, just below the
	// header band.
	ContentTop float64
}

// A4 is the page geometry every report is laid out on.
var A4 = Geometry{
	PageWidth:    595.28,
	PageHeight:   841.89,
	Margin:       40,
	HeaderHeight: 60,
	FooterHeight: 40,
	ContentTop:   80,
}

// ContentWidth returns the horizontal space available for body text.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Layout constants shared by the engine and its tests.
const (
	// sectionHeadingHeight is the vertical space a section heading
	// occupies: the 18pt title, the rule, and the spacing around them.
	sectionHeadingHeight = 40

	bodyLineHeight = 11
	bulletIndent   = 10
)

// Colors and fonts used throughout the report.
var (
	primaryColor   = types.RGB{R: 42, G: 77, B: 105}
	secondaryColor = types.RGB{R: 200, G: 200, B: 200}
	accentColor    = types.RGB{R: 100, G: 100, B: 100}
	black          = types.RGB{}
	white          = types.RGB{R: 255, G: 255, B: 255}
)

func font(size float64, bold bool) types.Font {
	return types.Font{Family: "Helvetica", Bold: bold, Size: size}
}
