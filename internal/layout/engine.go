package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/ergosmind/mindstyle-server/internal/styles"
	"github.com/ergosmind/mindstyle-server/internal/types"
)

// Engine lays a validated assessment result out into an ordered sequence of
// draw instructions. Rendering is a pure function of the input plus the
// fixed geometry and catalog; an Engine is safe for concurrent use.
type Engine struct {
	catalog *styles.Catalog
	metrics Metrics
	geo     Geometry
	now     func() time.Time
}

// NewEngine creates an engine that wraps text with the given metrics.
func NewEngine(catalog *styles.Catalog, metrics Metrics) *Engine {
	return &Engine{
		catalog: catalog,
		metrics: metrics,
		geo:     A4,
		now:     time.Now,
	}
}

// Render produces the full draw-instruction sequence for a report: cover
// page, one section per dominant style, optional supporting-style and
// balance-note sections, and the scores section in fixed display order.
//
// It fails with *ValidationError on incomplete input and with
// *styles.UnknownStyleError when a referenced style is not in the catalog,
// in both cases before emitting any instructions.
func (e *Engine) Render(res *types.AssessmentResult) ([]types.Instruction, error) {
	if err := e.validate(res); err != nil {
		return nil, err
	}

	em := &emitter{geo: e.geo, metrics: e.metrics}
	em.coverPage(res.Name, e.now().Format("January 2, 2006"))

	// Content starts on page 2, just below the header band.
	em.cursor = NewCursor(e.geo, 2)
	em.append(types.PageBreak{Page: 2})
	em.header(2)

	for _, id := range res.DominantStyles {
		d, err := e.catalog.Lookup(id)
		if err != nil {
			return nil, err
		}
		em.styleSection(d, "Your Dominant Mindstyle: "+d.Title)
	}

	if res.SupportingStyle != "" {
		d, err := e.catalog.Lookup(res.SupportingStyle)
		if err != nil {
			return nil, err
		}
		em.styleSection(d, "Your Supporting Mindstyle: "+d.Title)
	}

	if res.BalanceMessage != "" {
		em.balanceNote(res.BalanceMessage)
	}

	em.scores(res.Counts, e.catalog)
	em.footer()

	return em.instrs, nil
}

func (e *Engine) validate(res *types.AssessmentResult) error {
	if strings.TrimSpace(res.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(res.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(res.DominantStyles) == 0 {
		return &ValidationError{Field: "dominantStyles", Message: "at least one dominant style is required"}
	}

	seen := make(map[string]bool, len(res.DominantStyles))
	for _, id := range res.DominantStyles {
		if seen[id] {
			return &ValidationError{Field: "dominantStyles", Message: fmt.Sprintf("duplicate style %q", id)}
		}
		seen[id] = true
		if _, err := e.catalog.Lookup(id); err != nil {
			return err
		}
	}

	if res.SupportingStyle != "" {
		if _, err := e.catalog.Lookup(res.SupportingStyle); err != nil {
			return err
		}
	}

	for _, id := range styles.DisplayOrder {
		n, ok := res.Counts[id]
		if !ok {
			return &ValidationError{Field: "counts", Message: fmt.Sprintf("missing count for style %q", id)}
		}
		if n < 0 {
			return &ValidationError{Field: "counts", Message: fmt.Sprintf("negative count for style %q", id)}
		}
	}

	return nil
}

// emitter accumulates instructions for one report.
type emitter struct {
	geo     Geometry
	metrics Metrics
	cursor  *Cursor
	instrs  []types.Instruction
}

func (em *emitter) append(in types.Instruction) {
	em.instrs = append(em.instrs, in)
}

func (em *emitter) text(x, y float64, s string, f types.Font, c types.RGB) {
	em.append(types.Text{X: x, Y: y, Content: s, Font: f, Color: c})
}

func (em *emitter) wrapped(x, y float64, lines []string, f types.Font, c types.RGB) {
	em.append(types.WrappedText{X: x, Y: y, Lines: lines, LineHeight: bodyLineHeight, Font: f, Color: c})
}

// contentArea returns the vertical space available for content on one
// page, between the content top and the footer band.
func (em *emitter) contentArea() float64 {
	return em.geo.PageHeight - em.geo.FooterHeight - em.geo.ContentTop
}

// ensureFits inserts a page break when h points of content no longer fit
// above the footer band. The requirement is capped at one content area:
// blocks taller than a page start in place and are flowed across breaks
// by flowText, so no instruction is ever placed inside the footer band.
func (em *emitter) ensureFits(h float64) {
	if area := em.contentArea(); h > area {
		h = area
	}
	if em.cursor.NeedsBreak(em.geo.FooterHeight + h) {
		em.breakPage()
	}
}

// sectionBreak opens a new page when a section heading and the first
// bodyH points of its content no longer fit together, so a heading is
// never orphaned at the bottom of a page. Like ensureFits, the
// requirement is capped at one content area.
func (em *emitter) sectionBreak(bodyH float64) {
	needed := sectionHeadingHeight + bodyH
	if area := em.contentArea(); needed > area {
		needed = area
	}
	if em.cursor.NeedsBreak(em.geo.FooterHeight + needed) {
		em.breakPage()
	}
}

// flowText emits wrapped lines starting at the cursor, splitting the
// block across page breaks when it is taller than the space left above
// the footer band.
func (em *emitter) flowText(x float64, lines []string, f types.Font, c types.RGB) {
	for len(lines) > 0 {
		avail := em.geo.PageHeight - em.geo.FooterHeight - em.cursor.Y()
		if avail < 0 {
			em.breakPage()
			continue
		}
		// Baselines sit at y, y+lineHeight, ...; the first one needs no
		// vertical space of its own.
		n := int(avail/bodyLineHeight) + 1
		if n > len(lines) {
			n = len(lines)
		}
		em.wrapped(x, em.cursor.Y(), lines[:n], f, c)
		em.cursor.Advance(float64(n) * bodyLineHeight)
		lines = lines[n:]
	}
}

// breakPage closes the current page with a footer and opens the next one
// with a header.
func (em *emitter) breakPage() {
	em.footer()
	page := em.cursor.BreakPage()
	em.append(types.PageBreak{Page: page})
	em.header(page)
}

func (em *emitter) header(page int) {
	g := em.geo
	em.append(types.Rect{X: 0, Y: 0, W: g.PageWidth, H: g.HeaderHeight, Fill: primaryColor})
	em.text(g.Margin+50, 35, "Ergos Mind - Mindstyle Assessment", font(16, true), white)
	em.text(g.PageWidth-g.Margin-30, 35, fmt.Sprintf("Page %d", page), font(10, true), white)
	em.append(types.Image{Name: types.LogoImage, X: g.Margin, Y: 15, W: 40, H: 40})
}

func (em *emitter) footer() {
	g := em.geo
	em.append(types.Rect{X: 0, Y: g.PageHeight - g.FooterHeight, W: g.PageWidth, H: g.FooterHeight, Fill: secondaryColor})
	em.text(g.Margin, g.PageHeight-15, "© 2025 Ergos Mind | www.ergosmind.com", font(8, false), black)
}

func (em *emitter) coverPage(name, date string) {
	g := em.geo
	em.header(1)
	em.append(types.Image{Name: types.LogoImage, X: (g.PageWidth - 120) / 2, Y: 80, W: 120, H: 120})
	em.text(g.Margin, 220, "Mindstyle Assessment", font(26, true), primaryColor)
	em.text(g.Margin, 260, "Prepared for: "+name, font(14, false), black)
	em.text(g.Margin, 280, "Date: "+date, font(14, false), black)
	em.text(g.Margin, 320, "Powered by Ergos Mind", font(12, false), black)
	em.footer()
}

// styleSection emits one full style section: heading, rule, and the five
// labeled content blocks.
func (em *emitter) styleSection(d *styles.Descriptor, heading string) {
	coreLines := Wrap(d.Core, em.geo.ContentWidth(), font(11, false), em.metrics)
	em.sectionBreak(15 + float64(len(coreLines))*bodyLineHeight)
	em.sectionHeading(heading)
	em.labeledParagraph("Core Characteristics", d.Core, 15)
	em.labeledList("Strengths / Positives", d.Strengths)
	em.labeledList("Watch Outs", d.WatchOuts)
	em.labeledList("Growth Path / How to Optimize", d.Growth)
	em.labeledParagraph("Career Fit & Roles", d.Careers, 20)
}

func (em *emitter) sectionHeading(s string) {
	g := em.geo
	em.text(g.Margin, em.cursor.Y(), s, font(18, true), primaryColor)
	em.cursor.Advance(25)
	em.append(types.Line{
		X1: g.Margin, Y1: em.cursor.Y(),
		X2: g.PageWidth - g.Margin, Y2: em.cursor.Y(),
		Width: 1, Color: accentColor,
	})
	em.cursor.Advance(15)
}

func (em *emitter) labeledParagraph(label, body string, trailing float64) {
	bodyFont := font(11, false)
	lines := Wrap(body, em.geo.ContentWidth(), bodyFont, em.metrics)
	em.ensureFits(15 + float64(len(lines))*bodyLineHeight)

	em.text(em.geo.Margin, em.cursor.Y(), label, font(14, true), black)
	em.cursor.Advance(15)
	em.flowText(em.geo.Margin, lines, bodyFont, black)
	em.cursor.Advance(trailing)
}

func (em *emitter) labeledList(label string, items []string) {
	bodyFont := font(11, false)
	width := em.geo.ContentWidth() - bulletIndent

	for i, item := range items {
		lines := Wrap("• "+item, width, bodyFont, em.metrics)
		h := float64(len(lines)) * bodyLineHeight
		if i == 0 {
			// Keep the label attached to the first entry.
			em.ensureFits(15 + h)
			em.text(em.geo.Margin, em.cursor.Y(), label, font(14, true), black)
			em.cursor.Advance(15)
		} else {
			em.ensureFits(h)
		}
		em.flowText(em.geo.Margin+bulletIndent, lines, bodyFont, black)
		em.cursor.Advance(5)
	}
	em.cursor.Advance(10)
}

func (em *emitter) balanceNote(msg string) {
	bodyFont := font(11, false)
	lines := Wrap(msg, em.geo.ContentWidth(), bodyFont, em.metrics)

	em.sectionBreak(float64(len(lines)) * bodyLineHeight)
	em.sectionHeading("Balance Note")
	em.flowText(em.geo.Margin, lines, bodyFont, black)
	em.cursor.Advance(20)
}

// scores emits the final section listing every style's count, always in
// the catalog display order regardless of how the dominant styles were
// ordered in the input.
func (em *emitter) scores(counts map[string]int, catalog *styles.Catalog) {
	em.sectionBreak(float64(len(styles.DisplayOrder)) * 15)
	em.sectionHeading("Thinking Styles Scores")

	for _, id := range styles.DisplayOrder {
		d, err := catalog.Lookup(id)
		if err != nil {
			// Unreachable: DisplayOrder and the catalog share one source.
			continue
		}
		em.text(em.geo.Margin, em.cursor.Y(), fmt.Sprintf("%s: %d", d.Label, counts[id]), font(11, false), black)
		em.cursor.Advance(15)
	}
	em.cursor.Advance(5)
}
