package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"smartclub/api/internal/model"
)

// ErrDuplicateEmail is returned when a signup reuses an existing email.
var ErrDuplicateEmail = errors.New("email already registered")

// Membership is the subset of a user read by the checkout gate.
type Membership struct {
	Status     string
	Expiration time.Time
}

// GetMembership returns the user's membership state, or nil if the user
// does not exist.
func (r *StoreRepository) GetMembership(ctx context.Context, userID int) (*Membership, error) {
	var m Membership
	err := r.getExecutor(ctx).QueryRow(ctx,
		"SELECT membership_status, membership_expiration FROM users WHERE id = $1",
		userID).Scan(&m.Status, &m.Expiration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &m, nil
}

// CreateUser inserts a new user and returns the stored row.
func (r *StoreRepository) CreateUser(ctx context.Context, name, email, passwordHash, membershipStatus string, membershipExpiration time.Time) (*model.User, error) {
	var u model.User
	err := r.getExecutor(ctx).QueryRow(ctx,
		`INSERT INTO users (name, email, password, membership_status, membership_expiration)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, email, membership_status, membership_expiration, created_at`,
		name, email, passwordHash, membershipStatus, membershipExpiration).
		Scan(&u.ID, &u.Name, &u.Email, &u.MembershipStatus, &u.MembershipExpiration, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail returns the user with the given email, or nil if absent.
func (r *StoreRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.getExecutor(ctx).QueryRow(ctx,
		`SELECT id, name, email, password, membership_status, membership_expiration, created_at
		 FROM users WHERE email = $1`,
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.MembershipStatus, &u.MembershipExpiration, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}
