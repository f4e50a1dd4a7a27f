package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/restful-notes/internal/resource"
)

// tagsAPIHandler provides REST handlers for tags.
type tagsAPIHandler struct {
	svc       *resource.Service
	assembler func(*http.Request) resource.Assembler
}

// registerTagRoutes registers tag routes on r.
func registerTagRoutes(r chi.Router, svc *resource.Service, assembler func(*http.Request) resource.Assembler) {
	h := &tagsAPIHandler{svc: svc, assembler: assembler}
	r.Get("/tags", h.List)
	r.Post("/tags", h.Create)
	r.Get("/tags/{id}", h.Get)
	r.Patch("/tags/{id}", h.Patch)
	r.Delete("/tags/{id}", h.Delete)
	r.Get("/tags/{id}/notes", h.ListNotes)
}

// List returns every tag.
// GET /tags
//
// @Summary      List tags
// @Tags         Tags
// @Produce      application/hal+json
// @Success      200  {object}  resource.TagCollection
// @Failure      500  {object}  ErrorResponse
// @Router       /tags [get]
func (h *tagsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	a := h.assembler(r)
	writeHAL(w, http.StatusOK, a.Tags(a.TagsHref(), tags))
}

// Create stores a new tag and answers with its URI in Location.
// POST /tags
//
// @Summary      Create a tag
// @Tags         Tags
// @Accept       json
// @Param        body  body  resource.TagInput  true  "Tag to create"
// @Success      201
// @Header       201  {string}  Location  "URI of the new tag"
// @Failure      400  {object}  ErrorResponse
// @Router       /tags [post]
func (h *tagsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in resource.TagInput
	if !decodeBody(w, r, &in) {
		return
	}

	t, err := h.svc.CreateTag(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", h.assembler(r).TagHref(t.ID))
	w.WriteHeader(http.StatusCreated)
}

// Get returns a single tag.
// GET /tags/{id}
//
// @Summary      Get a tag
// @Tags         Tags
// @Produce      application/hal+json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  resource.TagModel
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id} [get]
func (h *tagsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Tag(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeHAL(w, http.StatusOK, h.assembler(r).Tag(t))
}

// Patch renames a tag when name is present.
// PATCH /tags/{id}
//
// @Summary      Update a tag
// @Tags         Tags
// @Accept       json
// @Param        id    path  string                  true  "Tag ID"
// @Param        body  body  resource.TagPatchInput  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id} [patch]
func (h *tagsAPIHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var in resource.TagPatchInput
	if !decodeBody(w, r, &in) {
		return
	}

	if _, err := h.svc.PatchTag(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a tag and detaches it from every note.
// DELETE /tags/{id}
//
// @Summary      Delete a tag
// @Tags         Tags
// @Param        id   path  string  true  "Tag ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id} [delete]
func (h *tagsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListNotes returns the notes carrying a tag.
// GET /tags/{id}/notes
//
// @Summary      List the notes of a tag
// @Tags         Tags
// @Produce      application/hal+json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  resource.NoteCollection
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id}/notes [get]
func (h *tagsAPIHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	notes, err := h.svc.TaggedNotes(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	a := h.assembler(r)
	writeHAL(w, http.StatusOK, a.Notes(a.TagNotesHref(id), notes))
}
