package entity

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
}
