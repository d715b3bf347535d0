package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type UpdateCategoryRequest struct {
	Id    uuid.UUID
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type CategoryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
