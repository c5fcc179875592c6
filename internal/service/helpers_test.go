package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

const testOwner = "owner-1"

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// note builds a never-modified note of testOwner.
func note(id, title string) models.Note {
	return models.Note{ID: id, OwnerID: testOwner, Title: title, Body: "body of " + id, CreatedAt: baseTime}
}

// modified returns n with UpdatedAt set to baseTime plus offset.
func modified(n models.Note, offset time.Duration) models.Note {
	t := baseTime.Add(offset)
	n.UpdatedAt = &t
	return n
}

// memGateway is an in-memory NoteGateway keeping notes in insertion order.
type memGateway struct {
	mu    sync.Mutex
	notes map[string]models.Note
	order []string

	fetchErr  error
	failOnIDs map[string]error
	writes    int
}

func newMemGateway(notes ...models.Note) *memGateway {
	g := &memGateway{notes: make(map[string]models.Note), failOnIDs: make(map[string]error)}
	for _, n := range notes {
		g.notes[n.ID] = n
		g.order = append(g.order, n.ID)
	}
	return g
}

func (g *memGateway) FetchAll(ctx context.Context, ownerID string) ([]models.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	var out []models.Note
	for _, id := range g.order {
		if n := g.notes[id]; n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (g *memGateway) Create(ctx context.Context, n models.Note) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.failOnIDs[n.ID]; err != nil {
		return err
	}
	if _, ok := g.notes[n.ID]; ok {
		return store.ErrNoteAlreadyExists
	}
	g.writes++
	g.notes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

func (g *memGateway) Update(ctx context.Context, n models.Note) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.failOnIDs[n.ID]; err != nil {
		return err
	}
	if _, ok := g.notes[n.ID]; !ok {
		return store.ErrNoteNotFound
	}
	g.writes++
	g.notes[n.ID] = n
	return nil
}

func (g *memGateway) Get(ctx context.Context, ownerID, id string) (models.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.notes[id]
	if !ok || n.OwnerID != ownerID {
		return models.Note{}, store.ErrNoteNotFound
	}
	return n, nil
}

func (g *memGateway) get(id string) (models.Note, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.notes[id]
	return n, ok
}

func (g *memGateway) writeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes
}

// snapshot returns the notes sorted by id, rendered for comparison.
func (g *memGateway) snapshot() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, 0, len(g.notes))
	for _, n := range g.notes {
		updated := "nil"
		if n.UpdatedAt != nil {
			updated = n.UpdatedAt.Format(time.RFC3339Nano)
		}
		out = append(out, fmt.Sprintf("%s|%s|%s|%t|%s|%s", n.ID, n.Title, n.Body, n.IsPublic, n.CreatedAt.Format(time.RFC3339Nano), updated))
	}
	sort.Strings(out)
	return out
}

func actionKinds(actions []models.SyncAction) []models.SyncActionKind {
	kinds := make([]models.SyncActionKind, 0, len(actions))
	for _, a := range actions {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

func planIDs(plan models.SyncPlan) (push, pull, conflicts []string) {
	for _, n := range plan.Push {
		push = append(push, n.ID)
	}
	for _, n := range plan.Pull {
		pull = append(pull, n.ID)
	}
	for _, p := range plan.Conflicts {
		conflicts = append(conflicts, p.Local.ID)
	}
	return push, pull, conflicts
}

func containsAny(haystack, needles []string) bool {
	return slices.ContainsFunc(needles, func(s string) bool { return slices.Contains(haystack, s) })
}
