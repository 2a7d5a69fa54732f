package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// SponsorRepository encapsulates sponsor persistence.
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *domain.Sponsor) error
	Update(ctx context.Context, sponsor *domain.Sponsor) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Sponsor, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Sponsor, int64, error)
}

type sponsorRepository struct {
	pool *pgxpool.Pool
}

// NewSponsorRepository instantiates repository.
func NewSponsorRepository(pool *pgxpool.Pool) SponsorRepository {
	return &sponsorRepository{pool: pool}
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `
        INSERT INTO sponsors (club_id, name, contact_email, contact_phone, tier, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		sponsor.ClubID,
		sponsor.Name,
		sponsor.ContactEmail,
		sponsor.ContactPhone,
		sponsor.Tier,
		sponsor.Active,
	).Scan(&sponsor.ID, &sponsor.CreatedAt, &sponsor.UpdatedAt)
}

func (r *sponsorRepository) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	const query = `
        UPDATE sponsors SET name=$1, contact_email=$2, contact_phone=$3, tier=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		sponsor.Name,
		sponsor.ContactEmail,
		sponsor.ContactPhone,
		sponsor.Tier,
		sponsor.Active,
		sponsor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sponsors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sponsorRepository) GetByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	const query = `
        SELECT id, club_id, name, contact_email, contact_phone, tier, active, created_at, updated_at
        FROM sponsors WHERE id=$1`

	var sponsor domain.Sponsor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sponsor.ID,
		&sponsor.ClubID,
		&sponsor.Name,
		&sponsor.ContactEmail,
		&sponsor.ContactPhone,
		&sponsor.Tier,
		&sponsor.Active,
		&sponsor.CreatedAt,
		&sponsor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Sponsor, int64, error) {
	countQuery := `SELECT COUNT(*) FROM sponsors`
	listQuery := `
        SELECT id, club_id, name, contact_email, contact_phone, tier, active, created_at, updated_at
        FROM sponsors ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM sponsors WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, name, contact_email, contact_phone, tier, active, created_at, updated_at
            FROM sponsors WHERE club_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
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

	sponsors := make([]domain.Sponsor, 0)
	for rows.Next() {
		var sponsor domain.Sponsor
		if err := rows.Scan(
			&sponsor.ID,
			&sponsor.ClubID,
			&sponsor.Name,
			&sponsor.ContactEmail,
			&sponsor.ContactPhone,
			&sponsor.Tier,
			&sponsor.Active,
			&sponsor.CreatedAt,
			&sponsor.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		sponsors = append(sponsors, sponsor)
	}
	return sponsors, total, rows.Err()
}
