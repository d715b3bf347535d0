package contract

import (
	"context"

	"noteswise-be/internal/entity"

	"github.com/google/uuid"
)

type FlashcardRepository interface {
	// FindAllByNoteIds returns flashcards of the given notes ordered by
	// creation timestamp descending.
	FindAllByNoteIds(ctx context.Context, noteIds []uuid.UUID) ([]*entity.Flashcard, error)
	// FindAllByNote does not check ownership; callers verify the note first.
	FindAllByNote(ctx context.Context, noteId uuid.UUID) ([]*entity.Flashcard, error)
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Flashcard, error)
	Create(ctx context.Context, flashcard *entity.Flashcard) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
}
