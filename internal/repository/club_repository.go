package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// ClubRepository encapsulates club persistence.
type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context, limit, offset int) ([]domain.Club, int64, error)
}

type clubRepository struct {
	pool *pgxpool.Pool
}

// NewClubRepository instantiates repository.
func NewClubRepository(pool *pgxpool.Pool) ClubRepository {
	return &clubRepository{pool: pool}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	const query = `
        INSERT INTO clubs (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, club.Name, club.Description).
		Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
}

func (r *clubRepository) Update(ctx context.Context, club *domain.Club) error {
	const query = `
        UPDATE clubs SET name=$1, description=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, club.Name, club.Description, club.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clubs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM clubs WHERE id=$1`

	var club domain.Club
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.CreatedAt,
		&club.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) List(ctx context.Context, limit, offset int) ([]domain.Club, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT id, name, description, created_at, updated_at
        FROM clubs ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clubs := make([]domain.Club, 0)
	for rows.Next() {
		var club domain.Club
		if err := rows.Scan(
			&club.ID,
			&club.Name,
			&club.Description,
			&club.CreatedAt,
			&club.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		clubs = append(clubs, club)
	}
	return clubs, total, rows.Err()
}
