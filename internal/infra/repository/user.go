package repository

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &readmodel.AuthorizedUserRM{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	var (
		rm           readmodel.AuthorizedUserRM
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, role, password_hash FROM users WHERE email = $1`,
		email.Value(),
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, role FROM users WHERE id = $1`,
		id,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &rm, nil
}
