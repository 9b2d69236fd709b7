// Package prompts defines the Section Plan: the fixed ordered list of
// report sections driving sectioned generation. The plan is plain data
// loaded from YAML; the orchestrator interprets it.
package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var defaultPlanYAML []byte

// Plan is the full section configuration, including the system prompt
// shared by every call.
type Plan struct {
	SystemPrompt string    `yaml:"system_prompt"`
	Sections     []Section `yaml:"sections"`
}

// Section is one report section: an identifier, a display name, a
// minimum length target and a prompt template with {named} placeholders.
type Section struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	MinWords int    `yaml:"min_words"`
	Prompt   string `yaml:"prompt"`
}

// IsDimension reports whether the section analyzes survey dimensions.
// Dimension sections feed the context accumulator for later sections.
func (s Section) IsDimension() bool {
	return strings.HasPrefix(s.ID, "dimensiones")
}

// Load reads a section plan from a YAML file.
func Load(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return parse(data)
}

// LoadDefault returns the built-in section plan.
func LoadDefault() (*Plan, error) {
	return parse(defaultPlanYAML)
}

func parse(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("error parsing section plan YAML: %w", err)
	}
	if err := validate(&plan); err != nil {
		return nil, fmt.Errorf("invalid section plan: %w", err)
	}
	return &plan, nil
}

func validate(plan *Plan) error {
	if strings.TrimSpace(plan.SystemPrompt) == "" {
		return fmt.Errorf("system_prompt must not be empty")
	}
	if len(plan.Sections) == 0 {
		return fmt.Errorf("plan has no sections")
	}

	seen := make(map[string]bool)
	for i, s := range plan.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true

		if s.Name == "" {
			return fmt.Errorf("section %q has no name", s.ID)
		}
		if strings.TrimSpace(s.Prompt) == "" {
			return fmt.Errorf("section %q has no prompt template", s.ID)
		}
		if s.MinWords <= 0 {
			return fmt.Errorf("section %q: min_words must be positive", s.ID)
		}
	}
	return nil
}

// Format substitutes {name} placeholders in a prompt template.
// Unknown placeholders are left as-is.
func Format(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
