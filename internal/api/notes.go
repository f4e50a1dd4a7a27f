package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/restful-notes/internal/resource"
)

// notesAPIHandler provides REST handlers for notes.
type notesAPIHandler struct {
	svc       *resource.Service
	assembler func(*http.Request) resource.Assembler
}

// registerNoteRoutes registers note routes on r.
func registerNoteRoutes(r chi.Router, svc *resource.Service, assembler func(*http.Request) resource.Assembler) {
	h := &notesAPIHandler{svc: svc, assembler: assembler}
	r.Get("/notes", h.List)
	r.Post("/notes", h.Create)
	r.Get("/notes/{id}", h.Get)
	r.Patch("/notes/{id}", h.Patch)
	r.Delete("/notes/{id}", h.Delete)
	r.Get("/notes/{id}/tags", h.ListTags)
}

// List returns every note.
// GET /notes
//
// @Summary      List notes
// @Tags         Notes
// @Produce      application/hal+json
// @Success      200  {object}  resource.NoteCollection
// @Failure      500  {object}  ErrorResponse
// @Router       /notes [get]
func (h *notesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	a := h.assembler(r)
	writeHAL(w, http.StatusOK, a.Notes(a.NotesHref(), notes))
}

// Create stores a new note and answers with its URI in Location.
// POST /notes
//
// @Summary      Create a note
// @Description  Creates a note. tags holds tag resource URIs; every one must exist.
// @Tags         Notes
// @Accept       json
// @Param        body  body  resource.NoteInput  true  "Note to create"
// @Success      201
// @Header       201  {string}  Location  "URI of the new note"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notes [post]
func (h *notesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in resource.NoteInput
	if !decodeBody(w, r, &in) {
		return
	}

	a := h.assembler(r)
	n, err := h.svc.CreateNote(r.Context(), a, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", a.NoteHref(n.ID))
	w.WriteHeader(http.StatusCreated)
}

// Get returns a single note.
// GET /notes/{id}
//
// @Summary      Get a note
// @Tags         Notes
// @Produce      application/hal+json
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  resource.NoteModel
// @Failure      404  {object}  ErrorResponse
// @Router       /notes/{id} [get]
func (h *notesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Note(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeHAL(w, http.StatusOK, h.assembler(r).Note(n))
}

// Patch applies a partial update. A present tags array replaces the note's tags.
// PATCH /notes/{id}
//
// @Summary      Update a note
// @Description  Absent fields are left untouched; present fields must not be blank. A tags array replaces the whole tag set and an empty array clears it. The update is atomic.
// @Tags         Notes
// @Accept       json
// @Param        id    path  string                   true  "Note ID"
// @Param        body  body  resource.NotePatchInput  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /notes/{id} [patch]
func (h *notesAPIHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in resource.NotePatchInput
	if !decodeBody(w, r, &in) {
		return
	}

	if _, err := h.svc.PatchNote(r.Context(), h.assembler(r), chi.URLParam(r, "id"), in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a note.
// DELETE /notes/{id}
//
// @Summary      Delete a note
// @Tags         Notes
// @Param        id   path  string  true  "Note ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /notes/{id} [delete]
func (h *notesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTags returns the tags of a note.
// GET /notes/{id}/tags
//
// @Summary      List the tags of a note
// @Tags         Notes
// @Produce      application/hal+json
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  resource.TagCollection
// @Failure      404  {object}  ErrorResponse
// @Router       /notes/{id}/tags [get]
func (h *notesAPIHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tags, err := h.svc.NoteTags(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	a := h.assembler(r)
	writeHAL(w, http.StatusOK, a.Tags(a.NoteTagsHref(id), tags))
}
