package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// PropertyRepository encapsulates property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Property, int64, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository instantiates repository.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	const query = `
        INSERT INTO properties (club_id, name, description, location, acquired_at, value_cents)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		property.ClubID,
		property.Name,
		property.Description,
		property.Location,
		property.AcquiredAt,
		property.ValueCents,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	const query = `
        UPDATE properties SET name=$1, description=$2, location=$3, acquired_at=$4, value_cents=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		property.Name,
		property.Description,
		property.Location,
		property.AcquiredAt,
		property.ValueCents,
		property.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	const query = `
        SELECT id, club_id, name, description, location, acquired_at, value_cents, created_at, updated_at
        FROM properties WHERE id=$1`

	var property domain.Property
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.ClubID,
		&property.Name,
		&property.Description,
		&property.Location,
		&property.AcquiredAt,
		&property.ValueCents,
		&property.CreatedAt,
		&property.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Property, int64, error) {
	countQuery := `SELECT COUNT(*) FROM properties`
	listQuery := `
        SELECT id, club_id, name, description, location, acquired_at, value_cents, created_at, updated_at
        FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM properties WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, name, description, location, acquired_at, value_cents, created_at, updated_at
            FROM properties WHERE club_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{clubID, limit, offset}
		countArgs = []any{clubID}
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(
			&property.ID,
			&property.ClubID,
			&property.Name,
			&property.Description,
			&property.Location,
			&property.AcquiredAt,
			&property.ValueCents,
			&property.CreatedAt,
			&property.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		properties = append(properties, property)
	}
	return properties, total, rows.Err()
}
