// Package rendering renders a draw-instruction sequence into a PDF
// document. It is the only package that knows about the PDF library; the
// layout engine never sees renderer internals.
package rendering

import (
	"bytes"
	_ "embed"

	"github.com/jung-kurt/gofpdf"

	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/types"
)

//go:embed assets/logo.png
var logoPNG []byte

// RenderPDF renders instructions in emission order onto successive pages,
// opening a new page for every PageBreak instruction, and returns the PDF
// bytes. The generated document is never written to disk here.
func RenderPDF(instrs []types.Instruction, geo layout.Geometry) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// Core fonts are cp1252; catalog text carries smart quotes, dashes and
	// bullets that need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.RegisterImageOptionsReader(types.LogoImage,
		gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(logoPNG))
	if pdf.Err() {
		return nil, &RenderError{Message: "failed to decode logo image", Cause: pdf.Error()}
	}

	pdf.AddPage()
	for _, in := range instrs {
		draw(pdf, tr, in)
	}
	if pdf.Err() {
		return nil, &RenderError{Message: "failed to assemble document", Cause: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write document", Cause: err}
	}
	return buf.Bytes(), nil
}

func draw(pdf *gofpdf.Fpdf, tr func(string) string, in types.Instruction) {
	switch v := in.(type) {
	case types.Text:
		setFont(pdf, v.Font)
		pdf.SetTextColor(v.Color.R, v.Color.G, v.Color.B)
		pdf.Text(v.X, v.Y, tr(v.Content))
	case types.WrappedText:
		setFont(pdf, v.Font)
		pdf.SetTextColor(v.Color.R, v.Color.G, v.Color.B)
		for i, line := range v.Lines {
			pdf.Text(v.X, v.Y+float64(i)*v.LineHeight, tr(line))
		}
	case types.Line:
		pdf.SetLineWidth(v.Width)
		pdf.SetDrawColor(v.Color.R, v.Color.G, v.Color.B)
		pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
	case types.Rect:
		pdf.SetFillColor(v.Fill.R, v.Fill.G, v.Fill.B)
		pdf.Rect(v.X, v.Y, v.W, v.H, "F")
	case types.Image:
		pdf.ImageOptions(v.Name, v.X, v.Y, v.W, v.H, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	case types.PageBreak:
		pdf.AddPage()
	}
}

func setFont(pdf *gofpdf.Fpdf, f types.Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	pdf.SetFont(f.Family, style, f.Size)
}
