package contract

import (
	"context"

	"noteswise-be/internal/entity"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	// FindAllByUser returns the user's categories ordered by name ascending.
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Category, error)
	// FindOne returns nil when no category matches both id and owner.
	FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
