package storage

// RunRecord captures one report generation for auditing.
type RunRecord struct {
	RunID            string   `json:"run_id"`
	Empresa          string   `json:"empresa"`
	Pais             string   `json:"pais"`
	Ciudad           string   `json:"ciudad"`
	Timestamp        string   `json:"timestamp"`
	OriginalCount    int      `json:"original_count"`
	FilteredCount    int      `json:"filtered_count"`
	ExcludedSegments []string `json:"excluded_segments,omitempty"`
	SectionIDs       []string `json:"section_ids"`
	ChartsRendered   int      `json:"charts_rendered"`
	PromptTokens     int      `json:"prompt_tokens"`
	CompletionTokens int      `json:"completion_tokens"`
	TotalTokens      int      `json:"total_tokens"`
	MarkdownPath     string   `json:"markdown_path"`
	PDFPath          string   `json:"pdf_path"`
}
