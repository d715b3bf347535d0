package contract

import (
	"context"

	"noteswise-be/internal/entity"

	"github.com/google/uuid"
)

type NoteRepository interface {
	// FindAllByUser returns the user's notes ordered by updated timestamp
	// descending, optionally narrowed to one category.
	FindAllByUser(ctx context.Context, userId uuid.UUID, categoryId *uuid.UUID) ([]*entity.Note, error)
	// FindOne returns nil when no note matches both id and owner.
	FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*entity.Note, error)
	// FindOneById looks up by id alone. Background consumers use it;
	// request paths must use FindOne.
	FindOneById(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
