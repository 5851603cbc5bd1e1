package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construware/construct-backend/internal/admins/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	const q = `
insert into admins (id, name, email, password_hash)
values ($1, $2, $3, $4)
returning id, name, email, password_hash, created_at, updated_at;
`
	var out domain.Admin
	err := r.db.QueryRow(ctx, q, a.ID, a.Name, a.Email, a.PasswordHash).
		Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreatedAt, &out.UpdatedAt)

	// unique violation on email
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, domain.ErrEmailRegistered
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const q = `
select id, name, email, password_hash, created_at, updated_at
from admins
where email = $1;
`
	var out domain.Admin
	err := r.db.QueryRow(ctx, q, email).
		Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	const q = `
select id, name, email, password_hash, created_at, updated_at
from admins
where id = $1;
`
	var out domain.Admin
	err := r.db.QueryRow(ctx, q, id).
		Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
