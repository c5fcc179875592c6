package tui

import (
	"strings"
	"time"
)

const uiDivider = "────────────────────────────────────────"

func renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(uiDivider))
	b.WriteString("\n")

	if strings.TrimSpace(data) == "" {
		b.WriteString("-\n")
		return b.String()
	}

	b.WriteString(data)
	if !strings.HasSuffix(data, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// firstLine returns the first line of v.
func firstLine(v string) string {
	line, _, _ := strings.Cut(v, "\n")
	return line
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
