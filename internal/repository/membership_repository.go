package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// MembershipRepository joins users to clubs with a role. The unique
// (user_id, club_id) constraint enforces one role per user per club.
type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Membership, error)
}

type membershipRepository struct {
	pool *pgxpool.Pool
}

// NewMembershipRepository instantiates repository.
func NewMembershipRepository(pool *pgxpool.Pool) MembershipRepository {
	return &membershipRepository{pool: pool}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	const query = `
        INSERT INTO memberships (user_id, club_id, role_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		membership.UserID,
		membership.ClubID,
		membership.RoleID,
	).Scan(&membership.ID, &membership.CreatedAt)
}

func (r *membershipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM memberships WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByUser returns the user's memberships, oldest first, with role names
// resolved for the login response view.
func (r *membershipRepository) ListByUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	const query = `
        SELECT m.id, m.user_id, m.club_id, m.role_id, r.name, m.created_at
        FROM memberships m
        JOIN roles r ON r.id = m.role_id
        WHERE m.user_id = $1
        ORDER BY m.created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]domain.Membership, 0)
	for rows.Next() {
		var membership domain.Membership
		if err := rows.Scan(
			&membership.ID,
			&membership.UserID,
			&membership.ClubID,
			&membership.RoleID,
			&membership.RoleName,
			&membership.CreatedAt,
		); err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, rows.Err()
}
