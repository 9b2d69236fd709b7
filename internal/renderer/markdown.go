// Package renderer converts the generated markdown narrative into the
// final PDF document, substituting [GRAFICO: keyword] markers with the
// rendered chart images.
package renderer

import (
	"regexp"
	"strings"
)

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockRule
	BlockBullet
	BlockNumbered
	BlockBoldLine
	BlockTable
	BlockChart
)

// Block is one renderable markdown unit.
type Block struct {
	Kind   BlockKind
	Level  int        // headings only
	Text   string     // paragraph, list item, bold line, chart keyword
	Prefix string     // numbered list marker, e.g. "3."
	Rows   [][]string // tables only
}

var (
	chartMarkerRe  = regexp.MustCompile(`(?i)^\s*\[(GRAFICO|GRÁFICO|CHART):\s*(.+?)\]\s*$`)
	numberedItemRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	tableSepRe     = regexp.MustCompile(`^[\s|:-]+$`)
)

// Parse walks the markdown line by line and produces the block sequence.
// Anything it does not recognize degrades to a plain paragraph instead of
// failing: model output formatting is not guaranteed.
func Parse(text string) []Block {
	var blocks []Block
	var tableRows []string
	inTable := false

	flushTable := func() {
		if inTable {
			if tbl := parseTable(tableRows); tbl != nil {
				blocks = append(blocks, *tbl)
			}
			inTable = false
			tableRows = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := chartMarkerRe.FindStringSubmatch(line); m != nil {
			flushTable()
			blocks = append(blocks, Block{Kind: BlockChart, Text: strings.TrimSpace(m[2])})
			continue
		}

		if strings.Contains(line, "|") && !strings.HasPrefix(trimmed, "```") {
			if !inTable {
				inTable = true
				tableRows = nil
			}
			tableRows = append(tableRows, line)
			continue
		}
		flushTable()

		switch {
		case strings.HasPrefix(line, "#### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 4, Text: strings.TrimSpace(line[5:])})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Text: strings.TrimSpace(line[3:])})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Text: strings.TrimSpace(line[2:])})

		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			blocks = append(blocks, Block{Kind: BlockRule})

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: trimmed[2:]})

		case numberedItemRe.MatchString(trimmed):
			m := numberedItemRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, Block{Kind: BlockNumbered, Prefix: m[1] + ".", Text: m[2]})

		case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
			blocks = append(blocks, Block{Kind: BlockBoldLine, Text: trimmed[2 : len(trimmed)-2]})

		case trimmed != "":
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: trimmed})
		}
	}
	flushTable()

	return blocks
}

func parseTable(lines []string) *Block {
	var rows [][]string
	for _, line := range lines {
		if tableSepRe.MatchString(line) {
			continue // separator row
		}
		var cells []string
		for _, cell := range strings.Split(line, "|") {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				// Markdown emphasis has no place inside table cells.
				cells = append(cells, strings.ReplaceAll(cell, "*", ""))
			}
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return &Block{Kind: BlockTable, Rows: rows}
}

// Span is a run of inline text with its formatting.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

var inlineRe = regexp.MustCompile(`(\*\*[^*]+\*\*|\*[^*]+\*)`)

// InlineSpans splits a line into **bold**, *italic* and plain runs.
func InlineSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, loc := range inlineRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Text: text[last:loc[0]]})
		}
		part := text[loc[0]:loc[1]]
		if strings.HasPrefix(part, "**") {
			spans = append(spans, Span{Text: part[2 : len(part)-2], Bold: true})
		} else {
			spans = append(spans, Span{Text: part[1 : len(part)-1], Italic: true})
		}
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
