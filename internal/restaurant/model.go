package restaurant

import "time"

// Coordinates is an explicit optional pair: a restaurant either has a real
// location or none at all. No zero-value sentinels.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Restaurant struct {
	ID          string       `json:"id"`
	Name        string       `json:"nome"`
	CuisineType string       `json:"tipo"`
	Description string       `json:"descricao"`
	ImageURL    *string      `json:"imagem_url,omitempty"`
	Coordinates *Coordinates `json:"coordenadas,omitempty"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// UpdateInput carries a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	CuisineType *string
	Description *string
	ImageURL    *string
	Coordinates *Coordinates
	Tags        *[]string
}
