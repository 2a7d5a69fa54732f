package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// RoleRepository encapsulates role persistence, including the permission
// junction rows owned by each role.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Role, int64, error)
	ListPermissionNames(ctx context.Context, roleID string) ([]string, error)
	ReplacePermissions(ctx context.Context, roleID string, permissionIDs []string) error
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository instantiates repository.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	const query = `
        INSERT INTO roles (club_id, name)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, role.ClubID, role.Name).
		Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
}

func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	const query = `UPDATE roles SET name=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, role.Name, role.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	const query = `
        SELECT id, club_id, name, created_at, updated_at
        FROM roles WHERE id=$1`

	var role domain.Role
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&role.ID,
		&role.ClubID,
		&role.Name,
		&role.CreatedAt,
		&role.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Role, int64, error) {
	countQuery := `SELECT COUNT(*) FROM roles`
	listQuery := `
        SELECT id, club_id, name, created_at, updated_at
        FROM roles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM roles WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, name, created_at, updated_at
            FROM roles WHERE club_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
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

	roles := make([]domain.Role, 0)
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(
			&role.ID,
			&role.ClubID,
			&role.Name,
			&role.CreatedAt,
			&role.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

func (r *roleRepository) ListPermissionNames(ctx context.Context, roleID string) ([]string, error) {
	const query = `
        SELECT p.name
        FROM role_permissions rp
        JOIN permissions p ON p.id = rp.permission_id
        WHERE rp.role_id = $1`

	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReplacePermissions swaps the role's permission set atomically.
func (r *roleRepository) ReplacePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id=$1`, roleID); err != nil {
		return err
	}
	for _, permissionID := range permissionIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			roleID, permissionID,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
