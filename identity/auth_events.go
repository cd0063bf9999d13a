package identity

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthEventStore records authentication events for later inspection.
// Writes are best-effort; the caller decides what to do with failures.
type AuthEventStore struct {
	pg *pgxpool.Pool
}

func NewAuthEventStore(pg *pgxpool.Pool) *AuthEventStore {
	return &AuthEventStore{pg: pg}
}

// LogAuth appends one authentication event.
func (s *AuthEventStore) LogAuth(ctx context.Context, userID int64, method string, ip string) error {
	if s.pg == nil {
		return nil
	}
	_, err := s.pg.Exec(ctx,
		`INSERT INTO auth_events (user_id, method, ip, created_at)
		 VALUES ($1, $2, $3, NOW())`,
		userID, method, ip)
	return err
}
