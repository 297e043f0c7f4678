package layout

// Cursor tracks the current vertical write position and page number within
// a fixed page geometry. Content emission moves it monotonically down a
// page; a page break resets it to the top of the content area.
//
// Centralizing break detection here keeps the "will this content fit" check
// in one place instead of scattered across every content-emitting call.
type Cursor struct {
	geo  Geometry
	y    float64
	page int
}

// NewCursor returns a cursor positioned at the top of the content area of
// the given page.
func NewCursor(geo Geometry, page int) *Cursor {
	return &Cursor{geo: geo, y: geo.ContentTop, page: page}
}

// Y returns the current vertical write position.
func (c *Cursor) Y() float64 { return c.y }

// Page returns the current page number.
func (c *Cursor) Page() int { return c.page }

// Advance moves the write position down by h.
func (c *Cursor) Advance(h float64) { c.y += h }

// NeedsBreak reports whether the cursor has passed the point where
// thresholdFromBottom points of content can still fit above the page
// bottom.
func (c *Cursor) NeedsBreak(thresholdFromBottom float64) bool {
	return c.y > c.geo.PageHeight-thresholdFromBottom
}

// BreakPage increments the page number, resets the write position to the
// top of the content area, and returns the new page number. Emitting the
// footer for the closed page and the header for the new one is the
// caller's responsibility.
func (c *Cursor) BreakPage() int {
	c.page++
	c.y = c.geo.ContentTop
	return c.page
}
