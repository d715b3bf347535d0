package service

import (
	"context"
	"time"

	"noteswise-be/internal/dto"
	"noteswise-be/internal/entity"
	"noteswise-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICategoryService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CategoryResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:        c.Id,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *categoryService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCategoryResponse(c))
	}
	return result, nil
}

func (s *categoryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.Category{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return toCategoryResponse(&category), nil
}

func (s *categoryService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Fetch first to check ownership
	category, err := uow.CategoryRepository().FindOne(ctx, req.Id, userId)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil && *req.Name != "" {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Check ownership
	category, err := uow.CategoryRepository().FindOne(ctx, id, userId)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	// Detach the deleted category from the owner's notes. Each note gets a
	// refreshed updated timestamp so listings reflect the change.
	notes, err := uow.NoteRepository().FindAllByUser(ctx, userId, &id)
	if err != nil {
		return err
	}
	for _, note := range notes {
		note.CategoryId = nil
		if err := uow.NoteRepository().Update(ctx, note); err != nil {
			return err
		}
	}

	return uow.Commit()
}
