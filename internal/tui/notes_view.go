package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	idColumnWidth       = 38
	titleColumnWidth    = 32
	flagColumnWidth     = 8
	modifiedColumnWidth = 20
)

var (
	idColumn       = lipgloss.NewStyle().Width(idColumnWidth)
	titleColumn    = lipgloss.NewStyle().Width(titleColumnWidth)
	flagColumn     = lipgloss.NewStyle().Width(flagColumnWidth)
	modifiedColumn = lipgloss.NewStyle().Width(modifiedColumnWidth)
)

// RenderNotes renders notes as a table, one note per row.
func RenderNotes(notes []models.Note) string {
	if len(notes) == 0 {
		return renderPage("Notes", helpStyle.Render("no notes yet, add one with `note add`"))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		idColumn.Render("ID"),
		titleColumn.Render("TITLE"),
		flagColumn.Render("PUBLIC"),
		modifiedColumn.Render("MODIFIED"),
	))
	b.WriteString("\n")

	for _, n := range notes {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			idColumn.Render(idStyle.Render(n.ID)),
			titleColumn.Render(fitText(firstLine(n.Title), titleColumnWidth-2)),
			flagColumn.Render(yesNo(n.IsPublic)),
			modifiedColumn.Render(modifiedAt(n)),
		))
		b.WriteString("\n")
	}

	return renderPage(fmt.Sprintf("Notes (%d)", len(notes)), b.String())
}

// RenderNote renders a single note with its full body.
func RenderNote(n models.Note) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(n.Title))
	b.WriteString("\n")
	b.WriteString(idStyle.Render(n.ID))
	b.WriteString("\n\n")
	b.WriteString(n.Body)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("public: %s  created: %s  modified: %s",
		yesNo(n.IsPublic), formatTime(n.CreatedAt), modifiedAt(n))))

	return boxStyle.Render(b.String())
}

func modifiedAt(n models.Note) string {
	if n.UpdatedAt == nil {
		return "never"
	}
	return formatTime(*n.UpdatedAt)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
