package types

// LogoImage is the registered name of the built-in logo image. The layout
// engine references images by name; the renderer resolves them.
const LogoImage = "logo"

// Font describes the face a text instruction is drawn with. Family is a
// renderer core font name (e.g. "Helvetica").
type Font struct {
	Family string
	Bold   bool
	Size   float64
}

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Instruction is one atomic draw directive. Instructions are produced in
// emission order and must be rendered in that order.
type Instruction interface {
	isInstruction()
}

// Text places a single line of text with its baseline at Y.
type Text struct {
	X, Y    float64
	Content string
	Font    Font
	Color   RGB
}

// WrappedText places pre-wrapped lines of text, the first baseline at Y and
// each subsequent line LineHeight below the previous one. The lines are
// wrapped by the layout engine with the same font metrics the renderer
// draws with, so the block's height is Y + len(Lines)*LineHeight.
type WrappedText struct {
	X, Y       float64
	Lines      []string
	LineHeight float64
	Font       Font
	Color      RGB
}

// Line draws a straight line segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGB
}

// Rect draws a filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       RGB
}

// Image places a named, previously registered image.
type Image struct {
	Name       string
	X, Y, W, H float64
}

// PageBreak closes the current page and opens the next one. Page is the
// number of the page being opened.
type PageBreak struct {
	Page int
}

func (Text) isInstruction()        {}
func (WrappedText) isInstruction() {}
func (Line) isInstruction()        {}
func (Rect) isInstruction()        {}
func (Image) isInstruction()       {}
func (PageBreak) isInstruction()   {}
