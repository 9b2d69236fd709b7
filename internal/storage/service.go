package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// SaveMarkdown writes the raw generated report next to the final
// document, for auditing and debugging.
func SaveMarkdown(content, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("error writing markdown file %s: %w", path, err)
	}
	return nil
}

// SaveRunRecord serializes the run record as indented JSON.
func SaveRunRecord(record *RunRecord, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.json", record.RunID))

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error serializing run record: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return "", fmt.Errorf("error writing file %s: %w", path, err)
	}

	return path, nil
}

// LoadRunRecord reads a previously saved run record.
func LoadRunRecord(dir, runID string) (*RunRecord, error) {
	path := filepath.Join(dir, fmt.Sprintf("report_%s.json", runID))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	var record RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("error parsing run record: %w", err)
	}
	return &record, nil
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify turns a company name into a file-name-safe slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = slugCleaner.ReplaceAllString(s, "")
	if s == "" {
		s = "empresa"
	}
	return s
}

// OutputName builds "informe_<slug>_<timestamp>.<ext>".
func OutputName(empresa string, t time.Time, ext string) string {
	return fmt.Sprintf("informe_%s_%s.%s", Slugify(empresa), t.Format("20060102_150405"), ext)
}
