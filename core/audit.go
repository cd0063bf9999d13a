package core

import (
	"context"
)

// AuthEventLogger records authentication events to an external sink.
// Implementations should be non-blocking and best-effort; failures are
// logged and never surfaced to the caller.
type AuthEventLogger interface {
	LogAuth(ctx context.Context, userID int64, method string, ip string) error
}
