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

// CategoryRepository is the volatile counterpart of the gorm implementation.
// Entries never expire; lifetime is the process lifetime.
type CategoryRepository struct {
	cache *cache.Cache
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.CategoryRepository = &CategoryRepository{}

func (r *CategoryRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0)
	for _, item := range r.cache.Items() {
		c := item.Object.(*entity.Category)
		if c.UserId == userId {
			clone := *c
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

func (r *CategoryRepository) FindOne(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*entity.Category, error) {
	if x, found := r.cache.Get(id.String()); found {
		c := x.(*entity.Category)
		if c.UserId == userId {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	stampOnWrite(&category.CreatedAt, &category.UpdatedAt)
	clone := *category
	r.cache.Set(category.Id.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	now := time.Now()
	category.UpdatedAt = &now
	clone := *category
	r.cache.Set(category.Id.String(), &clone, cache.NoExpiration)
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}
