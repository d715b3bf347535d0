package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"noteswise-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreateGeneratesSummary(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	created, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "Meeting notes",
		Content: "Discussed the Q3 roadmap.",
	})
	require.NoError(t, err)
	assert.Equal(t, "stub summary", created.Summary)
	assert.Nil(t, created.CategoryId)

	shown, err := env.notes.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "stub summary", shown.Summary)
}

func TestNoteCreateWithUnknownCategory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	unknown := uuid.New().String()
	_, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "t", Content: "c", CategoryId: &unknown})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	malformed := "not-a-uuid"
	_, err = env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "t", Content: "c", CategoryId: &malformed})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	// Neither attempt left a note behind
	list, err := env.notes.GetAll(ctx, userId, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoteCreateForeignCategoryRejected(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	category, err := env.categories.Create(ctx, owner, &dto.CreateCategoryRequest{Name: "Theirs"})
	require.NoError(t, err)
	foreign := category.Id.String()

	_, err = env.notes.Create(ctx, other, &dto.CreateNoteRequest{Title: "t", Content: "c", CategoryId: &foreign})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNoteListOrderedByLastTouch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	first, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "first", Content: "1"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "second", Content: "2"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "third", Content: "3"})
	require.NoError(t, err)

	list, err := env.notes.GetAll(ctx, userId, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)

	// Touching the oldest moves it to the front
	time.Sleep(5 * time.Millisecond)
	_, err = env.notes.Update(ctx, userId, &dto.UpdateNoteRequest{Id: first.Id, Title: "first again"})
	require.NoError(t, err)

	list, err = env.notes.GetAll(ctx, userId, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first again", list[0].Title)
}

func TestNoteListFilterByCategory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	category, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: "Work"})
	require.NoError(t, err)
	categoryId := category.Id.String()

	_, err = env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "tagged", Content: "x", CategoryId: &categoryId})
	require.NoError(t, err)
	_, err = env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "plain", Content: "y"})
	require.NoError(t, err)

	list, err := env.notes.GetAll(ctx, userId, &category.Id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tagged", list[0].Title)
}

func TestNoteShowOwnershipIsolation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	created, err := env.notes.Create(ctx, owner, &dto.CreateNoteRequest{Title: "secret", Content: "s"})
	require.NoError(t, err)

	_, err = env.notes.Show(ctx, other, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.notes.Update(ctx, other, &dto.UpdateNoteRequest{Id: created.Id, Title: "stolen"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = env.notes.Delete(ctx, other, created.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteUpdateClearCategory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	category, err := env.categories.Create(ctx, userId, &dto.CreateCategoryRequest{Name: "Temp"})
	require.NoError(t, err)
	categoryId := category.Id.String()

	created, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "n", Content: "c", CategoryId: &categoryId})
	require.NoError(t, err)
	require.NotNil(t, created.CategoryId)

	// An empty category_id clears the reference
	updated, err := env.notes.Update(ctx, userId, &dto.UpdateNoteRequest{Id: created.Id, CategoryId: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryId)

	// Absent category_id leaves whatever is there
	updated, err = env.notes.Update(ctx, userId, &dto.UpdateNoteRequest{Id: created.Id, Title: "renamed"})
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryId)
	assert.Equal(t, "renamed", updated.Title)
}

func TestNoteUpdateContentPublishesSummarizeMessage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	messages, err := env.pubSub.Subscribe(ctx, testTopic)
	require.NoError(t, err)

	created, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "n", Content: "before"})
	require.NoError(t, err)

	_, err = env.notes.Update(ctx, userId, &dto.UpdateNoteRequest{Id: created.Id, Content: "after"})
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var payload dto.SummarizeNoteMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, created.Id, payload.NoteId)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a summarize message after a content change")
	}

	// A title-only update publishes nothing
	_, err = env.notes.Update(ctx, userId, &dto.UpdateNoteRequest{Id: created.Id, Title: "renamed"})
	require.NoError(t, err)

	select {
	case msg := <-messages:
		t.Fatalf("unexpected message published: %s", msg.Payload)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNoteDeleteCascadesFlashcards(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	userId := uuid.New()

	note, err := env.notes.Create(ctx, userId, &dto.CreateNoteRequest{Title: "n", Content: "c"})
	require.NoError(t, err)

	cards, err := env.flashcards.CreateBulk(ctx, userId, note.Id, &dto.CreateFlashcardsRequest{
		Flashcards: []dto.CreateFlashcardRequest{
			{Question: "q1", Answer: "a1"},
			{Question: "q2", Answer: "a2"},
		},
	})
	require.NoError(t, err)
	require.Len(t, cards, 2)

	require.NoError(t, env.notes.Delete(ctx, userId, note.Id))

	_, err = env.notes.Show(ctx, userId, note.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := env.flashcards.GetAllForUser(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = env.flashcards.Delete(ctx, userId, cards[0].Id)
	assert.ErrorIs(t, err, ErrNotFound)
}
