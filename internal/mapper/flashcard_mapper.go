package mapper

import (
	"noteswise-be/internal/entity"
	"noteswise-be/internal/model"
)

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) ToEntity(f *model.Flashcard) *entity.Flashcard {
	if f == nil {
		return nil
	}

	return &entity.Flashcard{
		Id:        f.Id,
		NoteId:    f.NoteId,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToModel(f *entity.Flashcard) *model.Flashcard {
	if f == nil {
		return nil
	}

	return &model.Flashcard{
		Id:        f.Id,
		NoteId:    f.NoteId,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FlashcardMapper) ToEntities(flashcards []*model.Flashcard) []*entity.Flashcard {
	entities := make([]*entity.Flashcard, len(flashcards))
	for i, f := range flashcards {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
