package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}

	lat, lon := coordColumns(restaurant.Coordinates)

	query := `
		INSERT INTO restaurantes (
			id,
			nome,
			tipo,
			descricao,
			imagem_url,
			latitude,
			longitude,
			tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.CuisineType,
		restaurant.Description,
		restaurant.ImageURL,
		lat,
		lon,
		restaurant.Tags,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
}

// --------------------------------------------------
// List all restaurants, newest first
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Restaurant, error) {
	query := `
		SELECT
			id,
			nome,
			tipo,
			descricao,
			imagem_url,
			latitude,
			longitude,
			tags,
			created_at,
			updated_at
		FROM restaurantes
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant

	for rows.Next() {
		res, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Get one restaurant
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	query := `
		SELECT
			id,
			nome,
			tipo,
			descricao,
			imagem_url,
			latitude,
			longitude,
			tags,
			created_at,
			updated_at
		FROM restaurantes
		WHERE id = $1
	`

	res, err := scanRestaurant(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// --------------------------------------------------
// Update a restaurant
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	lat, lon := coordColumns(restaurant.Coordinates)

	query := `
		UPDATE restaurantes
		SET
			nome = $2,
			tipo = $3,
			descricao = $4,
			imagem_url = $5,
			latitude = $6,
			longitude = $7,
			tags = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		restaurant.ID,
		restaurant.Name,
		restaurant.CuisineType,
		restaurant.Description,
		restaurant.ImageURL,
		lat,
		lon,
		restaurant.Tags,
	).Scan(&restaurant.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Delete a restaurant
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurantes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Scan helpers
// --------------------------------------------------

func coordColumns(c *Coordinates) (*float64, *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Latitude, &c.Longitude
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var res Restaurant
	var lat, lon *float64

	if err := row.Scan(
		&res.ID,
		&res.Name,
		&res.CuisineType,
		&res.Description,
		&res.ImageURL,
		&lat,
		&lon,
		&res.Tags,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		res.Coordinates = &Coordinates{Latitude: *lat, Longitude: *lon}
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}

	return &res, nil
}
