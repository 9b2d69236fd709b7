package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"climate-insight/internal/anonymity"
	"climate-insight/internal/api"
	"climate-insight/internal/charts"
	"climate-insight/internal/config"
	"climate-insight/internal/locale"
	"climate-insight/internal/logger"
	"climate-insight/internal/metrics"
	"climate-insight/internal/prompts"
	"climate-insight/internal/renderer"
	"climate-insight/internal/storage"
	"climate-insight/internal/survey"
)

// Request describes one report generation.
type Request struct {
	InputFile     string
	Empresa       string
	Pais          string
	Ciudad        string
	OutputDir     string // empty = configured default
	IncludeCharts bool
	SectionsFile  string // empty = built-in section plan
}

// Generator runs the full pipeline: load, segment detection, anonymity
// filter, chart generation, sectioned LLM orchestration, persistence.
type Generator struct {
	cfg     *config.AppConfig
	client  api.Completer
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewGenerator(cfg *config.AppConfig, client api.Completer, m *metrics.Metrics, log *logger.Logger) *Generator {
	return &Generator{cfg: cfg, client: client, metrics: m, log: log}
}

// Generate produces the report and returns its run record. Validation
// and the anonymity gate run before the first LLM call; a failure
// anywhere aborts the run and cleans up the chart directory.
func (g *Generator) Generate(req Request) (*storage.RunRecord, error) {
	if err := g.cfg.OpenAI.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	plan, err := g.loadPlan(req.SectionsFile)
	if err != nil {
		return nil, err
	}

	g.metrics.IncrementReportsStarted()

	outDir := req.OutputDir
	if outDir == "" {
		outDir = g.cfg.Output.Dir
	}

	g.log.Info("loading survey", "file", req.InputFile)
	table, err := survey.Load(req.InputFile)
	if err != nil {
		return nil, fmt.Errorf("input error: %w", err)
	}
	g.log.Info("survey loaded", "responses", table.RowCount(), "questions", table.QuestionCount())

	// The anonymity gate. No prompt is ever built from unfiltered data
	// when a segment column exists.
	segmentColumn := survey.DetectSegmentColumn(table)
	filtered := table
	var exclusion *anonymity.ExclusionReport
	notaAnonimato := "Análisis realizado sin segmentación por sector."

	if segmentColumn != "" {
		g.log.Info("applying anonymity filter", "segment_column", truncateStr(segmentColumn, 50), "threshold", anonymity.Threshold)

		filtered, exclusion, err = anonymity.Filter(table, segmentColumn)
		if err != nil {
			return nil, err
		}
		g.log.Info("anonymity filter applied",
			"included", exclusion.FilteredCount, "excluded", exclusion.ExcludedCount)

		if filtered.RowCount() == 0 {
			return nil, fmt.Errorf("%w (threshold %d)", anonymity.ErrNoDataAfterFilter, anonymity.Threshold)
		}
		if !anonymity.Validate(filtered, segmentColumn) {
			return nil, fmt.Errorf("anonymity validation failed after filtering")
		}

		if len(exclusion.ExcludedSegments) > 0 {
			notaAnonimato = fmt.Sprintf(
				"NOTA SOBRE ANONIMATO:\n%s\nRespuestas incluidas en el análisis: %d de %d",
				exclusion.Warning, exclusion.FilteredCount, exclusion.OriginalCount)
		} else {
			notaAnonimato = fmt.Sprintf("Todas las respuestas fueron incluidas (todos los segmentos cumplen n >= %d).", anonymity.Threshold)
		}
	} else {
		g.log.Warn("no segment column detected, skipping segment analysis")
	}

	chartsDir := filepath.Join(outDir, "charts")
	success := false
	defer func() {
		if !success {
			os.RemoveAll(chartsDir)
		}
	}()

	var chartList []*charts.Chart
	chartSummary := ""
	if req.IncludeCharts {
		chartRenderer, err := charts.NewRenderer(
			g.cfg.Charts.Width, g.cfg.Charts.Height, g.cfg.Charts.FontPath, g.log)
		if err != nil {
			return nil, err
		}
		chartList = charts.GenerateAll(filtered, chartsDir, g.cfg.Charts.MaxCharts, chartRenderer, g.log)
		for range chartList {
			g.metrics.IncrementChartsRendered()
		}
		chartSummary = charts.Summarize(chartList)
		g.log.Info("charts generated", "count", len(chartList))
	}

	now := time.Now()
	orchestrator := NewOrchestrator(g.client, plan, g.metrics, g.log)
	result, err := orchestrator.Run(Inputs{
		Empresa:       req.Empresa,
		Pais:          req.Pais,
		Ciudad:        req.Ciudad,
		Fecha:         locale.MonthYear(now, req.Pais),
		NTotal:        filtered.RowCount(),
		NotaAnonimato: notaAnonimato,
		ChartSummary:  chartSummary,
		DatosCSV:      filtered.ToCSV(),
	})
	if err != nil {
		return nil, err
	}
	g.log.Info("report generated",
		"sections", len(result.SectionIDs),
		"chars", len(result.Document),
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens)

	mdPath := filepath.Join(outDir, storage.OutputName(req.Empresa, now, "md"))
	if err := storage.SaveMarkdown(result.Document, mdPath); err != nil {
		return nil, err
	}

	pdfPath := filepath.Join(outDir, storage.OutputName(req.Empresa, now, "pdf"))
	if err := renderer.RenderPDF(result.Document, charts.BuildIndex(chartList), pdfPath, g.log); err != nil {
		return nil, err
	}

	record := &storage.RunRecord{
		RunID:            uuid.NewString(),
		Empresa:          req.Empresa,
		Pais:             req.Pais,
		Ciudad:           req.Ciudad,
		Timestamp:        now.Format(time.RFC3339),
		FilteredCount:    filtered.RowCount(),
		OriginalCount:    table.RowCount(),
		SectionIDs:       result.SectionIDs,
		ChartsRendered:   len(chartList),
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
		MarkdownPath:     mdPath,
		PDFPath:          pdfPath,
	}
	if exclusion != nil {
		for label := range exclusion.ExcludedSegments {
			record.ExcludedSegments = append(record.ExcludedSegments, label)
		}
	}

	if _, err := storage.SaveRunRecord(record, filepath.Join(outDir, "runs")); err != nil {
		// The report itself is already on disk; a failed audit record is
		// worth a warning, not an abort.
		g.log.Warn("could not save run record", "error", err)
	}

	success = true
	g.metrics.IncrementReportsCompleted()

	return record, nil
}

func (g *Generator) loadPlan(sectionsFile string) (*prompts.Plan, error) {
	if sectionsFile != "" {
		return prompts.Load(sectionsFile)
	}
	return prompts.LoadDefault()
}

func truncateStr(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
