// Package markdown renders and parses the YAML-frontmatter notes the
// journal store writes, one note per archived day.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// SplitFrontmatter separates a note into its YAML metadata and body.
// Notes without a frontmatter block yield empty metadata unchanged.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, fence) {
		return map[string]any{}, content, nil
	}
	raw, body, found := strings.Cut(strings.TrimPrefix(content, fence), "\n---\n")
	if !found {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return meta, body, nil
}

// RenderFrontmatter produces a note with meta as a YAML block above body.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var b strings.Builder
	b.WriteString(fence)
	b.Write(raw)
	b.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(body)
	return b.String(), nil
}
