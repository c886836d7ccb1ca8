package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/SpritePack/internal/model"
)

// spriteColor represents an RGB color for a placed sprite in the
// layout diagram.
type spriteColor struct {
	R, G, B int
}

// spriteColors cycles through the placed sprites so adjacent ones are
// distinguishable at a glance.
var spriteColors = []spriteColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 10.0
)

// WritePDF generates a PDF layout report for a packed atlas: a scaled
// diagram of the placements followed by a placement table. Useful for
// reviewing packing efficiency without opening the atlas image itself.
func WritePDF(path string, meta model.AtlasMeta, settings model.PackSettings) error {
	if meta.N == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Atlas layout: %d x %d px, %d sprites", meta.W, meta.H, meta.N)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := tr(fmt.Sprintf("Used area: %d px² | Efficiency: %.1f%% | Expand: %dpx | Border: %dpx",
		meta.UsedArea(), meta.Efficiency(), settings.Expand, settings.Border))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the square atlas into the upper half of the page
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := (pageHeight - drawAreaTop - marginBottom) * 0.55
	scale := math.Min(drawWidth/float64(meta.W), drawHeight/float64(meta.H))
	canvasW := float64(meta.W) * scale
	canvasH := float64(meta.H) * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Atlas background
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed sprites
	pdf.SetFont("Helvetica", "", 6)
	for i, t := range meta.Textures {
		col := spriteColors[i%len(spriteColors)]
		sx := offsetX + float64(t.X)*scale
		sy := offsetY + float64(t.Y)*scale
		sw := float64(t.W) * scale
		sh := float64(t.H) * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(sx, sy, sw, sh, "FD")

		// Label only sprites big enough to hold text
		if sw > 12 && sh > 4 {
			pdf.SetTextColor(0, 0, 0)
			pdf.SetXY(sx, sy+sh/2-2)
			pdf.CellFormat(sw, 4, t.Name, "", 0, "C", false, 0, "")
		}
	}

	renderPlacementTable(pdf, meta, offsetY+canvasH+8)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// renderPlacementTable draws the placement listing below the diagram,
// continuing onto extra pages when the sprite count demands it.
func renderPlacementTable(pdf *fpdf.Fpdf, meta model.AtlasMeta, top float64) {
	const rowHeight = 5.0
	colWidths := []float64{70, 25, 25, 25, 25}
	headers := []string{"Name", "X", "Y", "W", "H"}

	y := top
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(marginLeft, y)
		for i, h := range headers {
			pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "L", false, 0, "")
		}
		y += rowHeight
		pdf.SetFont("Helvetica", "", 9)
	}

	drawHeader()
	for _, t := range meta.Textures {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
			drawHeader()
		}
		pdf.SetXY(marginLeft, y)
		cells := []string{
			t.Name,
			fmt.Sprintf("%d", t.X),
			fmt.Sprintf("%d", t.Y),
			fmt.Sprintf("%d", t.W),
			fmt.Sprintf("%d", t.H),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], rowHeight, c, "1", 0, "L", false, 0, "")
		}
		y += rowHeight
	}
}
