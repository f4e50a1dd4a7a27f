package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/restful-notes/internal/resource"
)

func registerIndexRoutes(r chi.Router, assembler func(*http.Request) resource.Assembler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		index(w, r, assembler(r))
	})
}

// index returns links to the notes and tags collections.
// GET /
//
// @Summary      API root
// @Description  Entry point linking to every collection.
// @Tags         Index
// @Produce      application/hal+json
// @Success      200  {object}  resource.IndexModel
// @Router       / [get]
func index(w http.ResponseWriter, _ *http.Request, a resource.Assembler) {
	writeHAL(w, http.StatusOK, a.Index())
}
