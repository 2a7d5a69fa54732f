package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub/club-service/internal/domain"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

// RegisterAccountParams carries the full registration bootstrap input.
// RoleGrants maps each default role name to the permission names it receives.
type RegisterAccountParams struct {
	Name         string
	Email        string
	PasswordHash string
	ClubName     string
	RoleGrants   map[string][]string
	AdminRole    string
}

// RegisteredAccount is the result of a successful bootstrap.
type RegisteredAccount struct {
	User *domain.User
	Club *domain.Club
	Role *domain.Role
}

// BootstrapRepository performs the multi-row registration write sequence.
type BootstrapRepository interface {
	RegisterAccount(ctx context.Context, params RegisterAccountParams) (*RegisteredAccount, error)
}

type bootstrapRepository struct {
	pool *pgxpool.Pool
}

// NewBootstrapRepository instantiates repository.
func NewBootstrapRepository(pool *pgxpool.Pool) BootstrapRepository {
	return &bootstrapRepository{pool: pool}
}

// RegisterAccount creates the user, the club, the default roles with their
// permission grants and the admin membership inside a single transaction, so
// a failure at any step leaves no orphaned rows. A concurrent registration
// with the same email loses the race on the users email unique constraint.
func (r *bootstrapRepository) RegisterAccount(ctx context.Context, params RegisterAccountParams) (*RegisteredAccount, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	user := &domain.User{Name: params.Name, Email: params.Email, PasswordHash: params.PasswordHash}
	err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if apperrors.IsUniqueViolation(err, "users_email_key") {
			return nil, apperrors.NewEmailAlreadyExists(params.Email)
		}
		return nil, err
	}

	club := &domain.Club{Name: params.ClubName}
	err = tx.QueryRow(ctx,
		`INSERT INTO clubs (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		club.Name,
	).Scan(&club.ID, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return nil, err
	}

	var adminRole *domain.Role
	for roleName, permissionNames := range params.RoleGrants {
		role := &domain.Role{ClubID: club.ID, Name: roleName}
		err = tx.QueryRow(ctx,
			`INSERT INTO roles (club_id, name) VALUES ($1, $2)
             RETURNING id, created_at, updated_at`,
			role.ClubID, role.Name,
		).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
		if err != nil {
			return nil, err
		}

		for _, permissionName := range permissionNames {
			cmd, err := tx.Exec(ctx,
				`INSERT INTO role_permissions (role_id, permission_id)
                 SELECT $1, id FROM permissions WHERE name=$2`,
				role.ID, permissionName,
			)
			if err != nil {
				return nil, err
			}
			if cmd.RowsAffected() == 0 {
				return nil, fmt.Errorf("bootstrap permission %q not seeded", permissionName)
			}
		}

		if roleName == params.AdminRole {
			adminRole = role
		}
	}
	if adminRole == nil {
		return nil, fmt.Errorf("admin role %q missing from role grants", params.AdminRole)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO memberships (user_id, club_id, role_id) VALUES ($1, $2, $3)`,
		user.ID, club.ID, adminRole.ID,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &RegisteredAccount{User: user, Club: club, Role: adminRole}, nil
}
