package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// PermissionRepository encapsulates the global permission catalog.
type PermissionRepository interface {
	Create(ctx context.Context, permission *domain.Permission) error
	Update(ctx context.Context, permission *domain.Permission) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Permission, error)
	List(ctx context.Context, limit, offset int) ([]domain.Permission, int64, error)
}

type permissionRepository struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository instantiates repository.
func NewPermissionRepository(pool *pgxpool.Pool) PermissionRepository {
	return &permissionRepository{pool: pool}
}

func (r *permissionRepository) Create(ctx context.Context, permission *domain.Permission) error {
	const query = `
        INSERT INTO permissions (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, permission.Name, permission.Description).
		Scan(&permission.ID, &permission.CreatedAt)
}

func (r *permissionRepository) Update(ctx context.Context, permission *domain.Permission) error {
	const query = `UPDATE permissions SET name=$1, description=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, permission.Name, permission.Description, permission.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *permissionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM permissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *permissionRepository) GetByID(ctx context.Context, id string) (*domain.Permission, error) {
	const query = `
        SELECT id, name, description, created_at
        FROM permissions WHERE id=$1`

	var permission domain.Permission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&permission.ID,
		&permission.Name,
		&permission.Description,
		&permission.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) List(ctx context.Context, limit, offset int) ([]domain.Permission, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM permissions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT id, name, description, created_at
        FROM permissions ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	permissions := make([]domain.Permission, 0)
	for rows.Next() {
		var permission domain.Permission
		if err := rows.Scan(
			&permission.ID,
			&permission.Name,
			&permission.Description,
			&permission.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		permissions = append(permissions, permission)
	}
	return permissions, total, rows.Err()
}
