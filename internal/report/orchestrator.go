package report

import (
	"fmt"
	"strconv"
	"strings"

	"climate-insight/internal/api"
	"climate-insight/internal/logger"
	"climate-insight/internal/metrics"
	"climate-insight/internal/prompts"
)

// Inputs carries everything the section prompt templates can reference.
// The two accumulator placeholders (dimensiones_previas,
// resumen_dimensiones) are owned by the orchestrator itself.
type Inputs struct {
	Empresa       string
	Pais          string
	Ciudad        string
	Fecha         string
	NTotal        int
	NotaAnonimato string
	ChartSummary  string
	DatosCSV      string
}

// sectionContext accumulates cross-section state for one report run.
// Later sections reference earlier dimensions through the distilled
// synopsis instead of re-sending every full section, which bounds prompt
// size while keeping the narrative coherent. One instance per run, never
// shared.
type sectionContext struct {
	dimensionesPrevias strings.Builder
	resumenDimensiones strings.Builder

	promptTokens     int
	completionTokens int
	totalTokens      int
}

// Result is the assembled report plus generation bookkeeping.
type Result struct {
	Document         string
	SectionIDs       []string
	SectionTexts     []string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Orchestrator drives the Section Plan: one model call per section, in
// plan order, each prompt formatted with the survey data and the
// accumulated context from earlier sections.
type Orchestrator struct {
	client  api.Completer
	plan    *prompts.Plan
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewOrchestrator(client api.Completer, plan *prompts.Plan, m *metrics.Metrics, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		client:  client,
		plan:    plan,
		metrics: m,
		log:     log,
	}
}

// Run executes every section of the plan sequentially and returns the
// assembled document. Any single section failure aborts the whole run:
// there is no partial document and no per-section retry.
func (o *Orchestrator) Run(in Inputs) (*Result, error) {
	ctx := &sectionContext{}
	result := &Result{}

	for i, section := range o.plan.Sections {
		o.log.Info("generating section",
			"section", section.ID, "position", fmt.Sprintf("%d/%d", i+1, len(o.plan.Sections)))

		prompt := o.formatSectionPrompt(section, in, ctx)

		completion, err := o.client.Complete([]api.Message{
			{Role: "system", Content: o.plan.SystemPrompt},
			{Role: "user", Content: prompt},
		})
		if o.metrics != nil {
			o.metrics.IncrementAPICall(err == nil)
		}
		if err != nil {
			return nil, fmt.Errorf("section %q failed: %w", section.ID, err)
		}
		if strings.TrimSpace(completion.Text) == "" {
			return nil, fmt.Errorf("section %q returned an empty response", section.ID)
		}

		result.SectionIDs = append(result.SectionIDs, section.ID)
		result.SectionTexts = append(result.SectionTexts, completion.Text)

		ctx.promptTokens += completion.Usage.PromptTokens
		ctx.completionTokens += completion.Usage.CompletionTokens
		ctx.totalTokens += completion.Usage.TotalTokens
		if o.metrics != nil {
			o.metrics.AddTokens(completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
			o.metrics.IncrementSectionsGenerated()
		}

		if section.IsDimension() {
			o.accumulate(ctx, completion.Text)
		}

		o.log.Info("section done",
			"section", section.ID,
			"chars", len(completion.Text),
			"prompt_tokens", completion.Usage.PromptTokens,
			"completion_tokens", completion.Usage.CompletionTokens)
	}

	result.Document = strings.Join(result.SectionTexts, "\n\n")
	result.PromptTokens = ctx.promptTokens
	result.CompletionTokens = ctx.completionTokens
	result.TotalTokens = ctx.totalTokens

	return result, nil
}

func (o *Orchestrator) formatSectionPrompt(section prompts.Section, in Inputs, ctx *sectionContext) string {
	return prompts.Format(section.Prompt, map[string]string{
		"empresa_nombre":       in.Empresa,
		"pais":                 in.Pais,
		"ciudad":               in.Ciudad,
		"fecha":                in.Fecha,
		"n_total":              strconv.Itoa(in.NTotal),
		"nota_anonimato":       in.NotaAnonimato,
		"graficos_disponibles": in.ChartSummary,
		"datos_csv":            in.DatosCSV,
		"dimensiones_previas":  ctx.dimensionesPrevias.String(),
		"resumen_dimensiones":  ctx.resumenDimensiones.String(),
	})
}

// accumulate feeds a dimension section's output into the run context:
// the full text for the next dimension batch, and the distilled synopsis
// lines for the summary/evaluation/plan/conclusion sections.
func (o *Orchestrator) accumulate(ctx *sectionContext, text string) {
	ctx.dimensionesPrevias.WriteString(text)
	ctx.dimensionesPrevias.WriteString("\n\n")

	for _, line := range ExtractSynopsisLines(text) {
		ctx.resumenDimensiones.WriteString(line)
		ctx.resumenDimensiones.WriteString("\n")
	}
}
