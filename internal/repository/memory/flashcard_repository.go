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

type FlashcardRepository struct {
	cache *cache.Cache
}

func NewFlashcardRepository() *FlashcardRepository {
	return &FlashcardRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.FlashcardRepository = &FlashcardRepository{}

func (r *FlashcardRepository) collect(keep func(*entity.Flashcard) bool) []*entity.Flashcard {
	result := make([]*entity.Flashcard, 0)
	for _, item := range r.cache.Items() {
		f := item.Object.(*entity.Flashcard)
		if keep(f) {
			clone := *f
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

func (r *FlashcardRepository) FindAllByNoteIds(ctx context.Context, noteIds []uuid.UUID) ([]*entity.Flashcard, error) {
	ids := make(map[uuid.UUID]struct{}, len(noteIds))
	for _, id := range noteIds {
		ids[id] = struct{}{}
	}

	return r.collect(func(f *entity.Flashcard) bool {
		_, ok := ids[f.NoteId]
		return ok
	}), nil
}

func (r *FlashcardRepository) FindAllByNote(ctx context.Context, noteId uuid.UUID) ([]*entity.Flashcard, error) {
	return r.collect(func(f *entity.Flashcard) bool {
		return f.NoteId == noteId
	}), nil
}

func (r *FlashcardRepository) FindOne(ctx context.Context, id uuid.UUID) (*entity.Flashcard, error) {
	if x, found := r.cache.Get(id.String()); found {
		f := x.(*entity.Flashcard)
		clone := *f
		return &clone, nil
	}
	return nil, nil
}

func (r *FlashcardRepository) Create(ctx context.Context, flashcard *entity.Flashcard) error {
	if flashcard.CreatedAt.IsZero() {
		flashcard.CreatedAt = time.Now()
	}
	clone := *flashcard
	r.cache.Set(flashcard.Id.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *FlashcardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *FlashcardRepository) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	for key, item := range r.cache.Items() {
		if item.Object.(*entity.Flashcard).NoteId == noteId {
			r.cache.Delete(key)
		}
	}
	return nil
}
