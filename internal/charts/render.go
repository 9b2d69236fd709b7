package charts

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"climate-insight/internal/logger"
)

// Bar palettes. Numeric scales get a light-to-dark blue gradient;
// categorical labels are colored by their sentiment.
var (
	colorsNumeric = []string{"#a8d5e5", "#6bb8d4", "#3a9fc2", "#1a7fa3", "#0d5f7a"}

	colorPositive = "#66c2a5"
	colorNeutral  = "#fdae61"
	colorNegative = "#d73027"
	colorDefault  = "#8da0cb"
)

var (
	positiveLabels = []string{"sí", "si", "yes", "siempre", "always", "frecuentemente", "excelente", "muy bueno", "bueno"}
	neutralLabels  = []string{"tal vez", "maybe", "a veces", "sometimes", "regular", "más o menos", "no sé", "neutro"}
	negativeLabels = []string{"no", "nunca", "never", "rara vez", "rarely", "malo", "muy malo", "pésimo"}
)

type Renderer struct {
	Width    int
	Height   int
	FontPath string

	log  *logger.Logger
	face font.Face
}

func NewRenderer(width, height int, fontPath string, log *logger.Logger) (*Renderer, error) {
	r := &Renderer{Width: width, Height: height, FontPath: fontPath, log: log}

	if fontPath != "" {
		face, err := loadFontFace(fontPath, 15)
		if err != nil {
			return nil, fmt.Errorf("could not load chart font: %w", err)
		}
		r.face = face
	}
	return r, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// Render draws a bar chart for one question and writes it as a PNG under
// outDir. The file name is derived from a hash of the question text so
// re-runs overwrite instead of piling up.
func (r *Renderer) Render(qd *QuestionData, outDir string) (string, error) {
	if len(qd.Counts) == 0 {
		return "", fmt.Errorf("no data to chart for %q", qd.Question)
	}

	w, h := r.Width, r.Height
	dc := gg.NewContext(w, h)
	if r.face != nil {
		dc.SetFontFace(r.face)
	}

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	const (
		marginLeft   = 60.0
		marginRight  = 30.0
		marginTop    = 60.0
		marginBottom = 50.0
	)
	plotW := float64(w) - marginLeft - marginRight
	plotH := float64(h) - marginTop - marginBottom

	maxCount := 0
	for _, n := range qd.Counts {
		if n > maxCount {
			maxCount = n
		}
	}

	nBars := len(qd.Counts)
	slot := plotW / float64(nBars)
	barW := slot * 0.7

	for i, count := range qd.Counts {
		barH := plotH * float64(count) / float64(maxCount)
		x := marginLeft + float64(i)*slot + (slot-barW)/2
		y := marginTop + plotH - barH

		dc.SetHexColor(r.barColor(qd, i))
		dc.DrawRectangle(x, y, barW, barH)
		dc.Fill()

		dc.SetRGB(0.15, 0.15, 0.15)
		// Count above the bar, label below the axis.
		dc.DrawStringAnchored(fmt.Sprintf("%d", count), x+barW/2, y-10, 0.5, 0.5)
		dc.DrawStringAnchored(truncate(qd.Labels[i], 18), x+barW/2, marginTop+plotH+18, 0.5, 0.5)
	}

	// Axis line
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(formatTitle(qd.Question), float64(w)/2, marginTop/2, 0.5, 0.5)
	dc.SetRGB(0.35, 0.35, 0.35)
	dc.DrawStringAnchored("Cantidad de respuestas", marginLeft, marginTop-14, 0, 0.5)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating charts directory: %w", err)
	}

	hash := md5.Sum([]byte(qd.Question))
	path := filepath.Join(outDir, fmt.Sprintf("chart_%x.png", hash[:4]))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("error saving chart: %w", err)
	}

	return path, nil
}

func (r *Renderer) barColor(qd *QuestionData, i int) string {
	if qd.Kind == KindNumericScale {
		return colorsNumeric[i%len(colorsNumeric)]
	}
	return categoricalColor(qd.Labels[i])
}

func categoricalColor(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, kw := range positiveLabels {
		if strings.Contains(l, kw) {
			return colorPositive
		}
	}
	for _, kw := range neutralLabels {
		if strings.Contains(l, kw) {
			return colorNeutral
		}
	}
	for _, kw := range negativeLabels {
		if strings.Contains(l, kw) {
			return colorNegative
		}
	}
	return colorDefault
}

var titleNumbering = regexp.MustCompile(`^[\d\.\)\s]+`)

func formatTitle(question string) string {
	cleaned := titleNumbering.ReplaceAllString(question, "")
	cleaned = truncate(cleaned, 60)
	if !strings.HasPrefix(cleaned, "¿") && strings.Contains(cleaned, "?") {
		cleaned = "¿" + cleaned
	}
	return cleaned
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
