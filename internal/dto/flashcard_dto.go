package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFlashcardRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type CreateFlashcardsRequest struct {
	Flashcards []CreateFlashcardRequest `json:"flashcards" validate:"required,min=1,dive"`
}

type FlashcardResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
