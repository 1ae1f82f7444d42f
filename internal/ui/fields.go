package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line in a rendered block.
type Field struct {
	Key   string
	Value string
}

// RenderFields renders fields as aligned "key  value" lines under a title.
// Fields with an empty value are skipped.
func RenderFields(title string, fields []Field) string {
	width := 0
	for _, f := range fields {
		if f.Value != "" && len(f.Key) > width {
			width = len(f.Key)
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
		sb.WriteString("\n")
	}
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(MutedStyle().Render(f.Key + strings.Repeat(" ", width-len(f.Key))))
		sb.WriteString("  ")
		sb.WriteString(InfoStyle().Render(f.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}
