package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// MemberRepository encapsulates roster member persistence.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Member, int64, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository instantiates repository.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (club_id, first_name, last_name, email, phone, joined_at, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		member.ClubID,
		member.FirstName,
		member.LastName,
		member.Email,
		member.Phone,
		member.JoinedAt,
		member.Active,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET first_name=$1, last_name=$2, email=$3, phone=$4,
            joined_at=$5, active=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		member.FirstName,
		member.LastName,
		member.Email,
		member.Phone,
		member.JoinedAt,
		member.Active,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	const query = `
        SELECT id, club_id, first_name, last_name, email, phone, joined_at, active, created_at, updated_at
        FROM members WHERE id=$1`

	var member domain.Member
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.ClubID,
		&member.FirstName,
		&member.LastName,
		&member.Email,
		&member.Phone,
		&member.JoinedAt,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Member, int64, error) {
	countQuery := `SELECT COUNT(*) FROM members`
	listQuery := `
        SELECT id, club_id, first_name, last_name, email, phone, joined_at, active, created_at, updated_at
        FROM members ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM members WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, first_name, last_name, email, phone, joined_at, active, created_at, updated_at
            FROM members WHERE club_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
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

	members := make([]domain.Member, 0)
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.ID,
			&member.ClubID,
			&member.FirstName,
			&member.LastName,
			&member.Email,
			&member.Phone,
			&member.JoinedAt,
			&member.Active,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		members = append(members, member)
	}
	return members, total, rows.Err()
}
