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

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID, categoryId *uuid.UUID) ([]*entity.Note, error) {
	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}
	if categoryId != nil {
		specs = append(specs, specification.ByCategoryID{CategoryID: *categoryId})
	}
	specs = append(specs, specification.OrderBy{Field: "updated_at", Desc: true})

	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*entity.Note, error) {
	return r.findOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
}

func (r *NoteRepositoryImpl) FindOneById(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *NoteRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	// Save instead of Updates so a nil CategoryId actually clears the column.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}
