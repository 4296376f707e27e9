package restaurant

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("restaurant not found")
	ErrMissingFields = errors.New("nome, tipo and descricao are required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name, cuisineType, description string,
	imageURL *string,
	coords *Coordinates,
	tags []string,
) (*Restaurant, error) {

	if name == "" || cuisineType == "" || description == "" {
		return nil, ErrMissingFields
	}

	restaurant := &Restaurant{
		Name:        name,
		CuisineType: cuisineType,
		Description: description,
		ImageURL:    imageURL,
		Coordinates: coords,
		Tags:        dedupTags(tags),
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants
// --------------------------------------------------
func (s *Service) List(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Get by ID
// --------------------------------------------------
func (s *Service) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Partial update
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id string, input *UpdateInput) (*Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.CuisineType != nil {
		restaurant.CuisineType = *input.CuisineType
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			restaurant.ImageURL = nil
		} else {
			restaurant.ImageURL = input.ImageURL
		}
	}
	if input.Coordinates != nil {
		restaurant.Coordinates = input.Coordinates
	}
	if input.Tags != nil {
		restaurant.Tags = dedupTags(*input.Tags)
	}

	if restaurant.Name == "" || restaurant.CuisineType == "" || restaurant.Description == "" {
		return nil, ErrMissingFields
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// dedupTags suppresses duplicates while preserving insertion order.
func dedupTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
