package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	List(ctx context.Context) ([]*Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	Update(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, id string) error
}
