package visualization

import (
	"fmt"
	"strings"

	"github.com/lasif-tools/cli/internal/ui/style"
)

// View implements tea.Model.
func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(style.Header(fmt.Sprintf("Model: %s", m.config.ModelName)))
	b.WriteString("\n\n")

	for i, comp := range m.config.Components {
		line := fmt.Sprintf("  %-24s %s", comp.Name, formatSize(comp.SizeBytes))
		if i == m.cursor {
			line = style.Info("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Depth: %.1f km\n", m.depth()))
	b.WriteString(depthGauge(m.depthIndex, depthSteps))
	b.WriteString(fmt.Sprintf("  %.0f..%.0f km\n", m.config.MinDepthKM, m.config.MaxDepthKM))

	b.WriteByte('\n')
	b.WriteString(style.Muted("up/down select component, left/right change depth, q quit"))
	b.WriteByte('\n')
	return b.String()
}

func depthGauge(index, steps int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i <= steps; i++ {
		if i == index {
			b.WriteByte('|')
		} else {
			b.WriteByte('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
