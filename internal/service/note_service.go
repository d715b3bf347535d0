package service

import (
	"context"
	"encoding/json"
	"time"

	"noteswise-be/internal/dto"
	"noteswise-be/internal/entity"
	"noteswise-be/internal/repository/unitofwork"
	"noteswise-be/pkg/summarizer"

	"github.com/google/uuid"
)

type INoteService interface {
	GetAll(ctx context.Context, userId uuid.UUID, categoryId *uuid.UUID) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	summarizer       *summarizer.Service
	publisherService IPublisherService
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	summarizerService *summarizer.Service,
	publisherService IPublisherService,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		summarizer:       summarizerService,
		publisherService: publisherService,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		Summary:    n.Summary,
		AudioUrl:   n.AudioUrl,
		CategoryId: n.CategoryId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (s *noteService) GetAll(ctx context.Context, userId uuid.UUID, categoryId *uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAllByUser(ctx, userId, categoryId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, toNoteResponse(n))
	}
	return result, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	return toNoteResponse(note), nil
}

// resolveCategory parses a category reference from a request and verifies
// the referenced category belongs to the caller. A nil result with nil
// error means "no category".
func (s *noteService) resolveCategory(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	categoryId, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	category, err := uow.CategoryRepository().FindOne(ctx, categoryId, userId)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return &categoryId, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var categoryRef string
	if req.CategoryId != nil {
		categoryRef = *req.CategoryId
	}
	categoryId, err := s.resolveCategory(ctx, uow, userId, categoryRef)
	if err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		AudioUrl:   req.AudioUrl,
		CategoryId: categoryId,
		UserId:     userId,
		CreatedAt:  time.Now(),
	}

	// Best effort: provider failures come back as descriptive text, never
	// as an error, so note creation cannot fail on the summary.
	note.Summary = s.summarizer.GenerateSummary(ctx, req.Content)

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, req.Id, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	contentChanged := req.Content != "" && req.Content != note.Content

	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}
	if req.Summary != nil {
		note.Summary = *req.Summary
	}
	if req.AudioUrl != nil {
		note.AudioUrl = *req.AudioUrl
	}
	if req.CategoryId != nil {
		categoryId, err := s.resolveCategory(ctx, uow, userId, *req.CategoryId)
		if err != nil {
			return nil, err
		}
		note.CategoryId = categoryId
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	// Content changed: regenerate the summary in the background.
	if contentChanged {
		msg := dto.SummarizeNoteMessage{NoteId: note.Id}
		msgJson, _ := json.Marshal(msg)
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			return nil, err
		}
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Check ownership
	note, err := uow.NoteRepository().FindOne(ctx, id, userId)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	// A flashcard's lifetime is bounded by its parent note.
	if err := uow.FlashcardRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
