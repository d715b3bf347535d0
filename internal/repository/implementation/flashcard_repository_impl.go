package implementation

import (
	"context"
	"errors"

	"noteswise-be/internal/entity"
	"noteswise-be/internal/mapper"
	"noteswise-be/internal/model"
	"noteswise-be/internal/repository/contract"
	"noteswise-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashcardRepository(db *gorm.DB) contract.FlashcardRepository {
	return &FlashcardRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashcardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashcardRepositoryImpl) FindAllByNoteIds(ctx context.Context, noteIds []uuid.UUID) ([]*entity.Flashcard, error) {
	if len(noteIds) == 0 {
		return []*entity.Flashcard{}, nil
	}

	var models []*model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByNoteIDs{NoteIDs: noteIds},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FlashcardRepositoryImpl) FindAllByNote(ctx context.Context, noteId uuid.UUID) ([]*entity.Flashcard, error) {
	var models []*model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FlashcardRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.Flashcard, error) {
	var m model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FlashcardRepositoryImpl) Create(ctx context.Context, flashcard *entity.Flashcard) error {
	m := r.mapper.ToModel(flashcard)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*flashcard = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlashcardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Flashcard{}).Error
}

func (r *FlashcardRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.Flashcard{}).Error
}
