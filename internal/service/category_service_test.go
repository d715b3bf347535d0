package service

import (
	"context"
	"testing"
	"time"

	"noteswise-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreateAndList(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	created, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: "Work", Color: "#ff0000"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "Work", created.Name)
	assert.Equal(t, "#ff0000", created.Color)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := env.categories.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.Id, list[0].Id)
}

func TestCategoryListOrderedByName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	for _, name := range []string{"Projects", "Archive", "Meetings"} {
		_, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := env.categories.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Archive", list[0].Name)
	assert.Equal(t, "Meetings", list[1].Name)
	assert.Equal(t, "Projects", list[2].Name)
}

func TestCategoryOwnershipIsolation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	created, err := env.categories.Create(ctx, owner, &dto.CreateCategoryRequest{Name: "Private"})
	require.NoError(t, err)

	list, err := env.categories.GetAll(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = env.categories.Update(ctx, other, &dto.UpdateCategoryRequest{Id: created.Id, Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = env.categories.Delete(ctx, other, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	// The owner still sees the original
	list, err = env.categories.GetAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Private", list[0].Name)
}

func TestCategoryUpdatePartial(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	created, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: "Study", Color: "#00ff00"})
	require.NoError(t, err)

	// Only the color is sent; the name stays
	updated, err := env.categories.Update(ctx, userId, &dto.UpdateCategoryRequest{Id: created.Id, Color: strPtr("#0000ff")})
	require.NoError(t, err)
	assert.Equal(t, "Study", updated.Name)
	assert.Equal(t, "#0000ff", updated.Color)
}

func TestCategoryDeleteDetachesNotes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	category, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: "Doomed"})
	require.NoError(t, err)
	categoryId := category.Id.String()

	tagged1, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "a", Content: "a", CategoryId: &categoryId})
	require.NoError(t, err)
	tagged2, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "b", Content: "b", CategoryId: &categoryId})
	require.NoError(t, err)
	plain, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "c", Content: "c"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, env.categories.Delete(ctx, userId, category.Id))

	list, err := env.categories.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Tagged notes survive without the reference and with a fresh timestamp
	for _, before := range []*dto.NoteResponse{tagged1, tagged2} {
		note, err := env.notes.Show(ctx, userId, before.Id)
		require.NoError(t, err)
		assert.Nil(t, note.CategoryId)
		require.NotNil(t, note.UpdatedAt)
		require.NotNil(t, before.UpdatedAt)
		assert.True(t, note.UpdatedAt.After(*before.UpdatedAt))
	}

	// The untagged note is untouched
	note, err := env.notes.Show(ctx, userId, plain.Id)
	require.NoError(t, err)
	require.NotNil(t, note.UpdatedAt)
	assert.Equal(t, *plain.UpdatedAt, *note.UpdatedAt)
}
