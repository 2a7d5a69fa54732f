package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
)

// PaymentRepository encapsulates payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]domain.Payment, int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (club_id, member_id, amount_cents, currency, method, reference, notes, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		payment.ClubID,
		payment.MemberID,
		payment.AmountCents,
		payment.Currency,
		payment.Method,
		payment.Reference,
		payment.Notes,
		payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	const query = `
        UPDATE payments SET member_id=$1, amount_cents=$2, currency=$3, method=$4,
            reference=$5, notes=$6, paid_at=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		payment.MemberID,
		payment.AmountCents,
		payment.Currency,
		payment.Method,
		payment.Reference,
		payment.Notes,
		payment.PaidAt,
		payment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `
        SELECT id, club_id, member_id, amount_cents, currency, method, reference, notes, paid_at, created_at, updated_at
        FROM payments WHERE id=$1`

	var payment domain.Payment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.ClubID,
		&payment.MemberID,
		&payment.AmountCents,
		&payment.Currency,
		&payment.Method,
		&payment.Reference,
		&payment.Notes,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Payment, int64, error) {
	countQuery := `SELECT COUNT(*) FROM payments`
	listQuery := `
        SELECT id, club_id, member_id, amount_cents, currency, method, reference, notes, paid_at, created_at, updated_at
        FROM payments ORDER BY paid_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	countArgs := []any{}

	if clubID != "" {
		countQuery = `SELECT COUNT(*) FROM payments WHERE club_id=$1`
		listQuery = `
            SELECT id, club_id, member_id, amount_cents, currency, method, reference, notes, paid_at, created_at, updated_at
            FROM payments WHERE club_id=$1 ORDER BY paid_at DESC LIMIT $2 OFFSET $3`
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

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.ClubID,
			&payment.MemberID,
			&payment.AmountCents,
			&payment.Currency,
			&payment.Method,
			&payment.Reference,
			&payment.Notes,
			&payment.PaidAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	return payments, total, rows.Err()
}
