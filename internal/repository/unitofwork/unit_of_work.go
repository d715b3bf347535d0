package unitofwork

import (
	"context"

	"noteswise-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CategoryRepository() contract.CategoryRepository
	NoteRepository() contract.NoteRepository
	FlashcardRepository() contract.FlashcardRepository
}
