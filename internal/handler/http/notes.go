package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// fetchNotes returns every note of the owner given in the owner_id query
// parameter. Without the parameter the authenticated owner is used.
func (h *Handler) fetchNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		ownerID, _ = utils.GetOwnerIDFromContext(ctx)
	}

	notes, err := h.services.NoteService.FetchAll(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchNotes").Str("owner_id", ownerID).Msg("error fetching notes")
		writeError(w, err)
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, models.NotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var note models.Note
	if err := utils.ReadJSON(r, &note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Create(ctx, note.Normalized()); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Str("id", note.ID).Msg("error creating note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// updateNote overwrites the note addressed by the {id} path parameter. A body
// without id takes the one of the path; a different one is rejected.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var note models.Note
	if err := utils.ReadJSON(r, &note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if note.ID == "" {
		note.ID = id
	}
	if note.ID != id {
		log.Err(errNoteIDMismatch).Str("func", "*Handler.updateNote").Str("path_id", id).Str("body_id", note.ID).Send()
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Update(ctx, note.Normalized()); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("id", id).Msg("error updating note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
