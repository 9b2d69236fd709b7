package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"climate-insight/internal/charts"
	"climate-insight/internal/logger"
)

const (
	pageWidth  = 210.0 // A4, mm
	marginSide = 20.0
	imageWidth = 130.0
	lineHeight = 5.5
	bodyPtSize = 11.0
	tableSize  = 9.0
)

// Core PDF fonts are cp1252; emojis become level tags before translation,
// remaining decorative ones are dropped.
var emojiReplacer = strings.NewReplacer(
	"🟢", "[Saludable]",
	"🟡", "[Atención]",
	"🔴", "[Crítico]",
	"🏢", "", "⚖️", "", "💰", "", "🛠️", "", "👥", "",
	"📢", "", "👔", "", "📚", "", "🎯", "", "⚖", "",
)

// RenderPDF converts the generated markdown into the final PDF,
// resolving chart markers against the chart index. A marker no tier can
// resolve renders as an italic placeholder; the document never fails
// because of a missing chart.
func RenderPDF(markdown string, index map[string]*charts.Chart, outPath string, log *logger.Logger) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, 20, marginSide)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	clean := func(s string) string {
		return tr(emojiReplacer.Replace(s))
	}

	for _, block := range Parse(markdown) {
		switch block.Kind {
		case BlockHeading:
			size := []float64{18, 15, 13, 12}[block.Level-1]
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*0.5, clean(block.Text), "", "L", false)
			pdf.Ln(2)

		case BlockRule:
			pdf.Ln(2)
			x, y := pdf.GetXY()
			pdf.SetDrawColor(160, 160, 160)
			pdf.Line(x, y, pageWidth-marginSide, y)
			pdf.Ln(4)

		case BlockBullet:
			pdf.SetFont("Helvetica", "", bodyPtSize)
			pdf.SetX(marginSide + 4)
			writeSpans(pdf, tr, "- "+block.Text, clean)
			pdf.Ln(lineHeight + 1)

		case BlockNumbered:
			pdf.SetFont("Helvetica", "", bodyPtSize)
			pdf.SetX(marginSide + 4)
			writeSpans(pdf, tr, block.Prefix+" "+block.Text, clean)
			pdf.Ln(lineHeight + 1)

		case BlockBoldLine:
			pdf.SetFont("Helvetica", "B", bodyPtSize)
			pdf.MultiCell(0, lineHeight, clean(block.Text), "", "L", false)
			pdf.Ln(1)

		case BlockTable:
			renderTable(pdf, block.Rows, clean)

		case BlockChart:
			renderChart(pdf, block.Text, index, clean, log)

		case BlockParagraph:
			pdf.SetFont("Helvetica", "", bodyPtSize)
			writeSpans(pdf, tr, block.Text, clean)
			pdf.Ln(lineHeight + 2)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("error writing PDF: %w", err)
	}
	return nil
}

// writeSpans writes a line honoring inline **bold** and *italic* runs.
func writeSpans(pdf *gofpdf.Fpdf, tr func(string) string, text string, clean func(string) string) {
	for _, span := range InlineSpans(text) {
		style := ""
		if span.Bold {
			style = "B"
		} else if span.Italic {
			style = "I"
		}
		pdf.SetFont("Helvetica", style, bodyPtSize)
		pdf.Write(lineHeight, clean(span.Text))
	}
}

func renderTable(pdf *gofpdf.Fpdf, rows [][]string, clean func(string) string) {
	if len(rows) == 0 {
		return
	}

	cols := len(rows[0])
	usable := pageWidth - 2*marginSide
	colWidth := usable / float64(cols)

	pdf.Ln(2)
	for i, row := range rows {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", tableSize)
			pdf.SetFillColor(230, 230, 230)
		} else {
			pdf.SetFont("Helvetica", "", tableSize)
			pdf.SetFillColor(255, 255, 255)
		}

		for j := 0; j < cols; j++ {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(colWidth, 7, clean(truncateCell(cell, 60)), "1", 0, "L", i == 0, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func truncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func renderChart(pdf *gofpdf.Fpdf, key string, index map[string]*charts.Chart, clean func(string) string, log *logger.Logger) {
	chart := ResolveChart(key, index)
	if chart != nil {
		if _, err := os.Stat(chart.Path); err == nil {
			x := (pageWidth - imageWidth) / 2
			pdf.Ln(2)
			pdf.ImageOptions(chart.Path, x, 0, imageWidth, 0, true,
				gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
			pdf.Ln(4)
			return
		}
		log.Warn("chart image missing on disk", "keyword", key, "path", chart.Path)
	} else {
		log.Warn("no chart matched marker", "keyword", key)
	}

	pdf.SetFont("Helvetica", "I", bodyPtSize)
	pdf.MultiCell(0, lineHeight, clean(fmt.Sprintf("[Gráfico no disponible: %s]", key)), "", "C", false)
	pdf.Ln(2)
}
