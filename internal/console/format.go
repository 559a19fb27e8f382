package console

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/regwizard/svc/registration"
)

// Format selects how the summary step is printed.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text" or "yaml", case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// RenderSummary prints the summary sections in the given format.
func RenderSummary(sections []registration.SummarySection, format Format) (string, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(sections)
		if err != nil {
			return "", fmt.Errorf("marshal summary: %w", err)
		}
		return string(out), nil
	case FormatText, "":
		var b strings.Builder
		for i, section := range sections {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(section.Title)
			b.WriteByte('\n')
			for _, item := range section.Items {
				fmt.Fprintf(&b, "  %s: %s\n", item.Label, item.Value)
			}
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderProgress draws the step indicator, e.g. "✓ Personal › ● Address › ○ Account › ○ Summary".
func RenderProgress(progress []registration.StepProgress) string {
	parts := make([]string, len(progress))
	for i, p := range progress {
		marker := "○"
		switch p.Position {
		case registration.PositionCompleted:
			marker = "✓"
		case registration.PositionCurrent:
			marker = "●"
		}
		parts[i] = marker + " " + p.Title
	}
	return strings.Join(parts, " › ")
}
