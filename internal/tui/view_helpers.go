package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chart-board/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: выход")

	return b.String()
}

func coinSummary(symbols []models.Symbol) string {
	coins, groups := models.GroupByCoin(symbols)
	if len(coins) == 0 {
		return "Монеты: -"
	}

	parts := make([]string, 0, len(coins))
	for _, coin := range coins {
		label := coin
		if label == "" {
			label = "?"
		}
		parts = append(parts, fmt.Sprintf("%s (%d)", label, len(groups[coin])))
	}

	return "Монеты: " + strings.Join(parts, ", ")
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func visibleMark(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func parseYesNo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "д", "да", "1", "true":
		return true
	default:
		return false
	}
}
