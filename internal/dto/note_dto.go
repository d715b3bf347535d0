package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	AudioUrl   string  `json:"audio_url"`
	CategoryId *string `json:"category_id"`
}

// UpdateNoteRequest carries partial updates. Pointer fields distinguish
// "not sent" from "sent empty": an empty category_id clears the reference.
type UpdateNoteRequest struct {
	Id         uuid.UUID
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Summary    *string `json:"summary"`
	AudioUrl   *string `json:"audio_url"`
	CategoryId *string `json:"category_id"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Summary    string     `json:"summary,omitempty"`
	AudioUrl   string     `json:"audio_url,omitempty"`
	CategoryId *uuid.UUID `json:"category_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// SummarizeNoteMessage is the payload published when a note's content
// changed and its summary should be regenerated in the background.
type SummarizeNoteMessage struct {
	NoteId uuid.UUID `json:"note_id"`
}
