package restaurant

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[string]*Restaurant),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	stored := *restaurant
	r.restaurants[restaurant.ID] = &stored
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, res := range r.restaurants {
		copied := *res
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	res, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	existing, ok := r.restaurants[restaurant.ID]
	if !ok {
		return ErrNotFound
	}
	restaurant.CreatedAt = existing.CreatedAt
	restaurant.UpdatedAt = time.Now()

	stored := *restaurant
	r.restaurants[restaurant.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.restaurants[id]; !ok {
		return ErrNotFound
	}
	delete(r.restaurants, id)
	return nil
}
