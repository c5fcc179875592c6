package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// syncModel shows a spinner with the current state of a sync pass until the
// terminal event arrives.
type syncModel struct {
	spinner spinner.Model
	state   models.SyncState
	plan    *models.PlanSummary
	result  *models.SyncResult

	interrupted bool
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s}
}

func (m syncModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case syncEventMsg:
		m.state = msg.event.State
		if msg.event.Plan != nil {
			m.plan = msg.event.Plan
		}
		if msg.event.Result != nil {
			m.result = msg.event.Result
			return m, tea.Quit
		}
		return m, nil

	case syncStreamClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m syncModel) View() string {
	if m.result != nil {
		return RenderResult(*m.result) + "\n"
	}
	if m.interrupted {
		return errorStyle.Render("sync interrupted") + "\n"
	}

	line := m.spinner.View() + " " + stateLabel(m.state)
	if m.plan != nil {
		line += " " + helpStyle.Render(renderPlan(*m.plan))
	}
	return line + "\n" + helpStyle.Render("q: cancel") + "\n"
}

// RenderEvent renders a non-interactive progress line for e.
func RenderEvent(e models.SyncEvent) string {
	if e.Result != nil {
		return RenderResult(*e.Result)
	}

	line := "• " + stateLabel(e.State)
	if e.Plan != nil {
		line += " " + helpStyle.Render(renderPlan(*e.Plan))
	}
	return line
}

// RenderResult renders the outcome of a pass: a one-line summary and, for a
// failed pass, one line per error.
func RenderResult(r models.SyncResult) string {
	var b strings.Builder

	if r.IsSuccess() {
		b.WriteString(successStyle.Render("✓ sync done"))
		b.WriteString(" ")
		b.WriteString(renderStats(r.Stats))
		return b.String()
	}

	b.WriteString(errorStyle.Render(fmt.Sprintf("✗ sync failed (%s)", r.State)))
	if r.Stats.Total() > 0 {
		b.WriteString(" ")
		b.WriteString(renderStats(r.Stats))
	}
	for _, e := range r.Errors {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return b.String()
}

func stateLabel(s models.SyncState) string {
	switch s {
	case models.SyncNotStarted:
		return "starting"
	case models.SyncFetchingBoth:
		return "fetching local and remote notes"
	case models.SyncReconciling:
		return "reconciling"
	case models.SyncApplying:
		return "applying changes"
	default:
		return s.String()
	}
}

func renderPlan(p models.PlanSummary) string {
	return fmt.Sprintf("push %d, pull %d, conflicts %d", p.Push, p.Pull, p.Conflicts)
}

func renderStats(s models.SyncStats) string {
	text := fmt.Sprintf("pushed %d, pulled %d, updated local %d, updated remote %d",
		s.Pushed, s.Pulled, s.UpdatedLocal, s.UpdatedRemote)
	if s.Failed > 0 {
		text += fmt.Sprintf(", failed %d", s.Failed)
	}
	return helpStyle.Render(text)
}
