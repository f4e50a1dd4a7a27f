package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/restful-notes/internal/resource"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/testutil"
	"github.com/joestump/restful-notes/internal/validation"
)

func newService(t *testing.T) *resource.Service {
	t.Helper()
	db := testutil.NewTestDB(t)
	return resource.NewService(store.NewNoteStore(db), store.NewTagStore(db), validation.New())
}

func strPtr(s string) *string { return &s }

func tagNames(tags []*store.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func TestService_CreateNote_WithTag(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, resource.TagInput{Name: "REST"})
	require.NoError(t, err)

	note, err := svc.CreateNote(ctx, a, resource.NoteInput{
		Title: "REST maturity model",
		Body:  "https://martinfowler.com/articles/richardsonMaturityModel.html",
		Tags:  []string{a.TagHref(tag.ID)},
	})
	require.NoError(t, err)

	tags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"REST"}, tagNames(tags))
}

func TestService_CreateNote_Validation(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)

	_, err := svc.CreateNote(context.Background(), a, resource.NoteInput{Title: " ", Body: "body"})
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs), "err = %v", err)
	require.Len(t, verrs.Violations, 1)
	assert.Equal(t, "title", verrs.Violations[0].Field)
}

func TestService_CreateNote_UnresolvedTag(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	missing := a.TagHref("123")
	_, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "t", Body: "b", Tags: []string{missing}})
	require.ErrorIs(t, err, resource.ErrUnresolvedReference)
	assert.Equal(t, "The tag 'http://localhost:8080/tags/123' does not exist", err.Error())

	notes, err := svc.Notes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestService_CreateNote_MalformedReference(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)

	_, err := svc.CreateNote(context.Background(), a, resource.NoteInput{Title: "t", Body: "b", Tags: []string{"http://localhost:8080/notes/1"}})
	var refErr *resource.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "http://localhost:8080/notes/1", refErr.URI)
}

func TestService_PatchNote_OmittedFieldsUntouched(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "title", Body: "body"})
	require.NoError(t, err)

	patched, err := svc.PatchNote(ctx, a, note.ID, resource.NotePatchInput{Body: strPtr("new body")})
	require.NoError(t, err)
	assert.Equal(t, "title", patched.Title)
	assert.Equal(t, "new body", patched.Body)
}

func TestService_PatchNote_BlankFieldRejected(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "title", Body: "body"})
	require.NoError(t, err)

	_, err = svc.PatchNote(ctx, a, note.ID, resource.NotePatchInput{Title: strPtr("")})
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "nullornotblank", verrs.Violations[0].Constraint)

	got, err := svc.Note(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", got.Title)
}

func TestService_PatchNote_Idempotent(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	rest, err := svc.CreateTag(ctx, resource.TagInput{Name: "REST"})
	require.NoError(t, err)
	note, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "title", Body: "body"})
	require.NoError(t, err)

	tags := []string{a.TagHref(rest.ID)}
	patch := resource.NotePatchInput{Title: strPtr("patched"), Tags: &tags}

	first, err := svc.PatchNote(ctx, a, note.ID, patch)
	require.NoError(t, err)
	firstTags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)

	second, err := svc.PatchNote(ctx, a, note.ID, patch)
	require.NoError(t, err)
	secondTags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, tagNames(firstTags), tagNames(secondTags))
}

func TestService_PatchNote_ReplaceWithEmptyClearsBothSides(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	tagA, err := svc.CreateTag(ctx, resource.TagInput{Name: "A"})
	require.NoError(t, err)
	tagB, err := svc.CreateTag(ctx, resource.TagInput{Name: "B"})
	require.NoError(t, err)
	note, err := svc.CreateNote(ctx, a, resource.NoteInput{
		Title: "title", Body: "body",
		Tags: []string{a.TagHref(tagA.ID), a.TagHref(tagB.ID)},
	})
	require.NoError(t, err)

	empty := []string{}
	_, err = svc.PatchNote(ctx, a, note.ID, resource.NotePatchInput{Tags: &empty})
	require.NoError(t, err)

	tags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
	for _, tag := range []*store.Tag{tagA, tagB} {
		notes, err := svc.TaggedNotes(ctx, tag.ID)
		require.NoError(t, err)
		assert.Empty(t, notes, "tag %s", tag.Name)
	}
}

func TestService_PatchNote_AtomicOnUnresolvedTag(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	tagA, err := svc.CreateTag(ctx, resource.TagInput{Name: "A"})
	require.NoError(t, err)
	tagB, err := svc.CreateTag(ctx, resource.TagInput{Name: "B"})
	require.NoError(t, err)
	note, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "title", Body: "body", Tags: []string{a.TagHref(tagA.ID)}})
	require.NoError(t, err)

	bad := a.TagHref("does-not-exist")
	refs := []string{a.TagHref(tagB.ID), bad}
	_, err = svc.PatchNote(ctx, a, note.ID, resource.NotePatchInput{Title: strPtr("changed"), Tags: &refs})

	var refErr *resource.ReferenceError
	require.True(t, errors.As(err, &refErr), "err = %v", err)
	assert.Equal(t, bad, refErr.URI)

	got, err := svc.Note(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", got.Title)
	tags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tagNames(tags))
}

func TestService_Symmetry(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, resource.TagInput{Name: "REST"})
	require.NoError(t, err)
	note, err := svc.CreateNote(ctx, a, resource.NoteInput{Title: "title", Body: "body"})
	require.NoError(t, err)

	refs := []string{a.TagHref(tag.ID)}
	_, err = svc.PatchNote(ctx, a, note.ID, resource.NotePatchInput{Tags: &refs})
	require.NoError(t, err)

	notes, err := svc.TaggedNotes(ctx, tag.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	tags, err := svc.NoteTags(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.ID, tags[0].ID)
}

func TestService_PatchNote_NotFound(t *testing.T) {
	svc := newService(t)
	a := newAssembler(t)

	_, err := svc.PatchNote(context.Background(), a, "missing", resource.NotePatchInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestService_PatchTag(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, resource.TagInput{Name: "REST"})
	require.NoError(t, err)

	patched, err := svc.PatchTag(ctx, tag.ID, resource.TagPatchInput{Name: strPtr("RESTful")})
	require.NoError(t, err)
	assert.Equal(t, "RESTful", patched.Name)

	unchanged, err := svc.PatchTag(ctx, tag.ID, resource.TagPatchInput{})
	require.NoError(t, err)
	assert.Equal(t, "RESTful", unchanged.Name)

	_, err = svc.PatchTag(ctx, tag.ID, resource.TagPatchInput{Name: strPtr("  ")})
	var verrs *validation.Errors
	assert.True(t, errors.As(err, &verrs))
}

func TestService_CreateTag_Blank(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateTag(context.Background(), resource.TagInput{Name: ""})
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "name", verrs.Violations[0].Field)
}

func TestService_AssociationsOfMissingResources(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.NoteTags(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.TaggedNotes(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
