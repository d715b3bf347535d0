package memory

import (
	"context"

	"noteswise-be/internal/repository/contract"
	"noteswise-be/internal/repository/unitofwork"
)

// RepositoryFactory satisfies unitofwork.RepositoryFactory over the
// in-process store. The repositories are shared singletons so every unit
// of work sees the same data; Begin/Commit/Rollback are no-ops, which
// leaves the cascade steps non-atomic with the initiating delete. That
// window is accepted for this store.
type RepositoryFactory struct {
	categories *CategoryRepository
	notes      *NoteRepository
	flashcards *FlashcardRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		categories: NewCategoryRepository(),
		notes:      NewNoteRepository(),
		flashcards: NewFlashcardRepository(),
	}
}

var _ unitofwork.RepositoryFactory = &RepositoryFactory{}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{factory: f}
}

type unitOfWork struct {
	factory *RepositoryFactory
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) CategoryRepository() contract.CategoryRepository {
	return u.factory.categories
}

func (u *unitOfWork) NoteRepository() contract.NoteRepository {
	return u.factory.notes
}

func (u *unitOfWork) FlashcardRepository() contract.FlashcardRepository {
	return u.factory.flashcards
}
