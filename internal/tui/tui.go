// Package tui renders the output of the note client: note tables, sync
// progress and build information. Sync progress is shown with an animated
// spinner when the output is a terminal and as plain lines otherwise.
package tui

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// SyncPass starts a sync pass bound to ctx and yields its state transitions.
type SyncPass func(ctx context.Context) iter.Seq[models.SyncEvent]

type TUI struct {
	out         io.Writer
	in          io.Reader
	interactive bool
}

// New returns a TUI writing to out. Interactive rendering is used only when
// both out and in are terminals.
func New(out io.Writer, in io.Reader) *TUI {
	return &TUI{out: out, in: in, interactive: isTerminal(out) && isTerminal(in)}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *TUI) PrintNotes(notes []models.Note) {
	fmt.Fprintln(t.out, RenderNotes(notes))
}

func (t *TUI) PrintNote(n models.Note) {
	fmt.Fprintln(t.out, RenderNote(n))
}

func (t *TUI) PrintBuildInfo(info models.AppBuildInfo, serverVersion string) {
	fmt.Fprintln(t.out, RenderBuildInfo(info, serverVersion))
}

// PrintSyncResult prints the outcome of a background pass prefixed with the
// current time.
func (t *TUI) PrintSyncResult(r models.SyncResult) {
	fmt.Fprintln(t.out, helpStyle.Render(time.Now().Format(time.TimeOnly))+" "+RenderResult(r))
}

func (t *TUI) Success(format string, args ...any) {
	fmt.Fprintln(t.out, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func (t *TUI) Error(err error) {
	fmt.Fprintln(t.out, errorStyle.Render("✗")+" "+HumanizeError(err))
}

// CopyNote puts the title and body of n on the system clipboard.
func (t *TUI) CopyNote(n models.Note) error {
	text := n.Title
	if n.Body != "" {
		text += "\n\n" + n.Body
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Sync runs pass and renders its progress. It returns the result carried by
// the terminal event, or ErrSyncInterrupted if the pass ended without one.
func (t *TUI) Sync(ctx context.Context, pass SyncPass) (models.SyncResult, error) {
	if !t.interactive {
		return t.syncPlain(ctx, pass)
	}

	passCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSyncModel(),
		tea.WithContext(passCtx),
		tea.WithOutput(t.out),
		tea.WithInput(t.in),
	)

	streamDone := make(chan struct{})
	go func() {
		defer close(streamDone)
		for e := range pass(passCtx) {
			p.Send(syncEventMsg{event: e})
		}
		p.Send(syncStreamClosedMsg{})
	}()

	finalModel, runErr := p.Run()
	cancel()
	<-streamDone

	result, ok := finalModel.(syncModel)
	if !ok || result.result == nil {
		if runErr != nil && ctx.Err() == nil {
			return models.SyncResult{}, runErr
		}
		return models.SyncResult{}, ErrSyncInterrupted
	}
	return *result.result, nil
}

func (t *TUI) syncPlain(ctx context.Context, pass SyncPass) (models.SyncResult, error) {
	var result *models.SyncResult
	for e := range pass(ctx) {
		fmt.Fprintln(t.out, RenderEvent(e))
		if e.Result != nil {
			result = e.Result
		}
	}
	if result == nil {
		return models.SyncResult{}, ErrSyncInterrupted
	}
	return *result, nil
}
