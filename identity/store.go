// Package identity provides user lookups and provisioning against the
// users table.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balansai/miniapp-backend/entitlements"
)

// Store provides minimal identity lookups/mutations over Postgres.
type Store struct {
	pg *pgxpool.Pool
}

func NewStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg}
}

// User is a stored profile row keyed by Telegram user id.
type User struct {
	UserID       int64
	Username     *string
	FirstName    *string
	LastName     *string
	LanguageCode *string
	CreatedAt    time.Time
}

// GetByID returns the profile for a user, or nil if none exists.
func (s *Store) GetByID(ctx context.Context, userID int64) (*User, error) {
	if s.pg == nil || userID == 0 {
		return nil, nil
	}
	var u User
	err := s.pg.QueryRow(ctx,
		`SELECT user_id, username, first_name, last_name, language_code, created_at
		 FROM users WHERE user_id=$1 LIMIT 1`, userID).
		Scan(&u.UserID, &u.Username, &u.FirstName, &u.LastName, &u.LanguageCode, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Subscription reads the plan fields for a user. Implements
// entitlements.SubscriptionSource; nil means no user record.
func (s *Store) Subscription(ctx context.Context, userID int64) (*entitlements.Subscription, error) {
	if s.pg == nil {
		return nil, errors.New("identity: no database")
	}
	var kind, expiresAt *string
	err := s.pg.QueryRow(ctx,
		`SELECT subscription_kind, subscription_expires_at FROM users WHERE user_id=$1 LIMIT 1`,
		userID).Scan(&kind, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sub := &entitlements.Subscription{}
	if kind != nil {
		sub.Kind = *kind
	}
	if expiresAt != nil {
		sub.ExpiresAt = *expiresAt
	}
	return sub, nil
}

// EnsureUser inserts a user row if absent. Concurrent callers are safe; the
// insert is a no-op when the row already exists.
func (s *Store) EnsureUser(ctx context.Context, userID int64, username, firstName string) error {
	if s.pg == nil || userID == 0 {
		return nil
	}
	_, err := s.pg.Exec(ctx,
		`INSERT INTO users (user_id, username, first_name, created_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, username, firstName)
	return err
}

// UpdateProfile refreshes mutable profile fields from a verified payload.
func (s *Store) UpdateProfile(ctx context.Context, userID int64, username, firstName, lastName, languageCode string) error {
	if s.pg == nil || userID == 0 {
		return nil
	}
	_, err := s.pg.Exec(ctx,
		`UPDATE users
		 SET username=$2, first_name=$3, last_name=$4, language_code=$5, updated_at=NOW()
		 WHERE user_id=$1`,
		userID, username, firstName, lastName, languageCode)
	return err
}
