package resource

import "github.com/joestump/restful-notes/internal/hal"

// Link relations exposed by the API.
const (
	RelNotes       = "notes"
	RelTags        = "tags"
	RelNoteTags    = "note-tags"
	RelTaggedNotes = "tagged-notes"
)

// IndexModel is the representation of the API root.
type IndexModel struct {
	Links hal.Links `json:"_links" swaggertype:"object"`
}

// NoteModel is the representation of a single note.
type NoteModel struct {
	Title string    `json:"title" example:"REST maturity model"`
	Body  string    `json:"body" example:"https://martinfowler.com/articles/richardsonMaturityModel.html"`
	Links hal.Links `json:"_links" swaggertype:"object"`
}

// TagModel is the representation of a single tag.
type TagModel struct {
	Name  string    `json:"name" example:"REST"`
	Links hal.Links `json:"_links" swaggertype:"object"`
}

// NoteCollection is the representation of a list of notes.
type NoteCollection struct {
	Embedded EmbeddedNotes `json:"_embedded"`
	Links    hal.Links     `json:"_links" swaggertype:"object"`
}

// EmbeddedNotes holds the notes of a NoteCollection.
type EmbeddedNotes struct {
	Notes []NoteModel `json:"notes"`
}

// TagCollection is the representation of a list of tags.
type TagCollection struct {
	Embedded EmbeddedTags `json:"_embedded"`
	Links    hal.Links    `json:"_links" swaggertype:"object"`
}

// EmbeddedTags holds the tags of a TagCollection.
type EmbeddedTags struct {
	Tags []TagModel `json:"tags"`
}

// NoteInput is the request body for POST /notes. Tags are tag resource URIs.
type NoteInput struct {
	Title string   `json:"title" validate:"notblank" example:"REST maturity model"`
	Body  string   `json:"body" validate:"notblank" example:"https://martinfowler.com/articles/richardsonMaturityModel.html"`
	Tags  []string `json:"tags,omitempty" example:"http://localhost:8080/tags/3f2a3c2e-7c4e-4a43-9b5e-0f8f0c3f1b7d"`
}

// NotePatchInput is the request body for PATCH /notes/{id}. Absent fields are
// left untouched; a present tags array replaces the note's whole tag set.
type NotePatchInput struct {
	Title *string   `json:"title,omitempty" validate:"nullornotblank"`
	Body  *string   `json:"body,omitempty" validate:"nullornotblank"`
	Tags  *[]string `json:"tags,omitempty"`
}

// TagInput is the request body for POST /tags.
type TagInput struct {
	Name string `json:"name" validate:"notblank" example:"REST"`
}

// TagPatchInput is the request body for PATCH /tags/{id}.
type TagPatchInput struct {
	Name *string `json:"name,omitempty" validate:"nullornotblank" example:"RESTful"`
}
