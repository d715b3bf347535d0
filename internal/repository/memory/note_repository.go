package memory

import (
	"context"
	"sort"
	"time"

	"noteswise-be/internal/entity"
	"noteswise-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type NoteRepository struct {
	cache *cache.Cache
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.NoteRepository = &NoteRepository{}

// stampOnWrite fills timestamps the way gorm's autoCreateTime and
// autoUpdateTime do on insert, so both stores look the same to callers.
func stampOnWrite(createdAt *time.Time, updatedAt **time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if *updatedAt == nil {
		*updatedAt = &now
	}
}

// touchedAt orders notes by last mutation, falling back to creation time.
func touchedAt(n *entity.Note) time.Time {
	if n.UpdatedAt != nil {
		return *n.UpdatedAt
	}
	return n.CreatedAt
}

func (r *NoteRepository) FindAllByUser(ctx context.Context, userId uuid.UUID, categoryId *uuid.UUID) ([]*entity.Note, error) {
	result := make([]*entity.Note, 0)
	for _, item := range r.cache.Items() {
		n := item.Object.(*entity.Note)
		if n.UserId != userId {
			continue
		}
		if categoryId != nil && (n.CategoryId == nil || *n.CategoryId != *categoryId) {
			continue
		}
		clone := *n
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool {
		return touchedAt(result[i]).After(touchedAt(result[j]))
	})

	return result, nil
}

func (r *NoteRepository) FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*entity.Note, error) {
	if x, found := r.cache.Get(id.String()); found {
		n := x.(*entity.Note)
		if n.UserId == userId {
			clone := *n
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) FindOneById(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	if x, found := r.cache.Get(id.String()); found {
		n := x.(*entity.Note)
		clone := *n
		return &clone, nil
	}
	return nil, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	stampOnWrite(&note.CreatedAt, &note.UpdatedAt)
	clone := *note
	r.cache.Set(note.Id.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	now := time.Now()
	note.UpdatedAt = &now
	clone := *note
	r.cache.Set(note.Id.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}
