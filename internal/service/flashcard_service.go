package service

import (
	"context"
	"time"

	"noteswise-be/internal/dto"
	"noteswise-be/internal/entity"
	"noteswise-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFlashcardService interface {
	GetAllForUser(ctx context.Context, userId uuid.UUID) ([]*dto.FlashcardResponse, error)
	GetAllByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.FlashcardResponse, error)
	CreateBulk(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, req *dto.CreateFlashcardsRequest) ([]*dto.FlashcardResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type flashcardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFlashcardService(uowFactory unitofwork.RepositoryFactory) IFlashcardService {
	return &flashcardService{
		uowFactory: uowFactory,
	}
}

func toFlashcardResponse(f *entity.Flashcard) *dto.FlashcardResponse {
	return &dto.FlashcardResponse{
		Id:        f.Id,
		NoteId:    f.NoteId,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
	}
}

func toFlashcardResponses(flashcards []*entity.Flashcard) []*dto.FlashcardResponse {
	result := make([]*dto.FlashcardResponse, 0, len(flashcards))
	for _, f := range flashcards {
		result = append(result, toFlashcardResponse(f))
	}
	return result
}

func (s *flashcardService) GetAllForUser(ctx context.Context, userId uuid.UUID) ([]*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Ownership is transitive: resolve the caller's note ids first.
	notes, err := uow.NoteRepository().FindAllByUser(ctx, userId, nil)
	if err != nil {
		return nil, err
	}

	noteIds := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		noteIds = append(noteIds, n.Id)
	}

	flashcards, err := uow.FlashcardRepository().FindAllByNoteIds(ctx, noteIds)
	if err != nil {
		return nil, err
	}

	return toFlashcardResponses(flashcards), nil
}

func (s *flashcardService) GetAllByNote(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Verify the note belongs to the caller
	note, err := uow.NoteRepository().FindOne(ctx, noteId, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	flashcards, err := uow.FlashcardRepository().FindAllByNote(ctx, noteId)
	if err != nil {
		return nil, err
	}

	return toFlashcardResponses(flashcards), nil
}

func (s *flashcardService) CreateBulk(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, req *dto.CreateFlashcardsRequest) ([]*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Verify the note belongs to the caller
	note, err := uow.NoteRepository().FindOne(ctx, noteId, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}

	created := make([]*dto.FlashcardResponse, 0, len(req.Flashcards))
	for _, fc := range req.Flashcards {
		flashcard := entity.Flashcard{
			Id:        uuid.New(),
			NoteId:    noteId,
			Question:  fc.Question,
			Answer:    fc.Answer,
			CreatedAt: time.Now(),
		}
		if err := uow.FlashcardRepository().Create(ctx, &flashcard); err != nil {
			return nil, err
		}
		created = append(created, toFlashcardResponse(&flashcard))
	}

	return created, nil
}

func (s *flashcardService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	flashcard, err := uow.FlashcardRepository().FindOne(ctx, id)
	if err != nil {
		return err
	}
	if flashcard == nil {
		return ErrNotFound
	}

	// The flashcard itself carries no owner; check through its parent note.
	note, err := uow.NoteRepository().FindOne(ctx, flashcard.NoteId, userId)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}

	return uow.FlashcardRepository().Delete(ctx, id)
}
