package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// ActivityRepository encapsulates activity persistence.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Activity, int64, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository instantiates repository.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	const query = `
        INSERT INTO activities (club_id, title, description, location, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		activity.ClubID,
		activity.Title,
		activity.Description,
		activity.Location,
		activity.StartsAt,
		activity.EndsAt,
	).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	const query = `
        UPDATE activities SET title=$1, description=$2, location=$3, starts_at=$4, ends_at=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		activity.Title,
		activity.Description,
		activity.Location,
		activity.StartsAt,
		activity.EndsAt,
		activity.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	const query = `
        SELECT id, club_id, title, description, location, starts_at, ends_at, created_at, updated_at
        FROM activities WHERE id=$1`

	var activity domain.Activity
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.ClubID,
		&activity.Title,
		&activity.Description,
		&activity.Location,
		&activity.StartsAt,
		&activity.EndsAt,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Activity, int64, error) {
	countQuery := `SELECT COUNT(*) FROM activities`
	listQuery := `
        SELECT id, club_id, title, description, location, starts_at, ends_at, created_at, updated_at
        FROM activities ORDER BY starts_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM activities WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, title, description, location, starts_at, ends_at, created_at, updated_at
            FROM activities WHERE club_id=$1 ORDER BY starts_at DESC LIMIT $2 OFFSET $3`
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

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.ClubID,
			&activity.Title,
			&activity.Description,
			&activity.Location,
			&activity.StartsAt,
			&activity.EndsAt,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		activities = append(activities, activity)
	}
	return activities, total, rows.Err()
}
