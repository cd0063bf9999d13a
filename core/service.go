// Package core wires signature verification, session establishment, and
// entitlement checks into one service consumed by the HTTP adapters.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/entitlements"
	"github.com/balansai/miniapp-backend/sessiontoken"
	"github.com/balansai/miniapp-backend/telegramauth"
)

// ErrAuthenticationRequired is returned when no acceptable credential was
// presented and the development fallback is not in effect.
var ErrAuthenticationRequired = errors.New("core: authentication required")

// Placeholder identity substituted for a real caller in development mode
// only. Must never be reachable in a production deployment.
const (
	PlaceholderUserID    int64 = 123456789
	placeholderUsername        = "test_user"
	placeholderFirstName       = "Test User"
)

// Credential establishment methods reported to the audit sink.
const (
	MethodInitData     = "init_data"
	MethodSessionToken = "session_token"
	MethodDevFallback  = "dev_fallback"
)

// IdentityStore is the slice of the identity package the service needs.
type IdentityStore interface {
	EnsureUser(ctx context.Context, userID int64, username, firstName string) error
	UpdateProfile(ctx context.Context, userID int64, username, firstName, lastName, languageCode string) error
}

// Config holds the immutable settings the service reads per request.
type Config struct {
	BotToken      string
	Mode          entitlements.Mode
	SessionSecret string
	SessionTTL    time.Duration
	UpgradeURL    string
}

// Service performs session establishment and entitlement checks. It holds
// no per-request state and is safe for concurrent use.
type Service struct {
	cfg    Config
	users  IdentityStore
	gate   *entitlements.Gate
	events AuthEventLogger
	log    logrus.FieldLogger
	now    func() time.Time
}

func NewService(cfg Config, users IdentityStore, gate *entitlements.Gate, events AuthEventLogger, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &Service{cfg: cfg, users: users, gate: gate, events: events, log: log, now: time.Now}
}

// Mode returns the service's failure-policy mode.
func (s *Service) Mode() entitlements.Mode { return s.cfg.Mode }

// UpgradeURL returns the redirect target for callers without an active plan.
func (s *Service) UpgradeURL() string { return s.cfg.UpgradeURL }

// Session is the established caller identity plus how it was established.
type Session struct {
	Identity telegramauth.Identity
	Method   string
}

// EstablishSession turns the presented credentials into an authenticated
// identity. Order: session token, then signed initData. In development mode
// a missing or failing credential substitutes the placeholder identity and
// guarantees its user record exists; in production it fails.
func (s *Service) EstablishSession(ctx context.Context, initData, bearerToken, remoteIP string) (Session, error) {
	if bearerToken != "" {
		claims, err := sessiontoken.Verify(bearerToken, []byte(s.cfg.SessionSecret))
		if err == nil {
			return Session{
				Identity: telegramauth.Identity{UserID: claims.UserID, Username: claims.Username},
				Method:   MethodSessionToken,
			}, nil
		}
		s.log.WithError(err).Debug("session token rejected, falling through to init data")
	}

	if initData == "" {
		return s.fallbackOrFail(ctx, ErrAuthenticationRequired, remoteIP)
	}

	ident, err := telegramauth.Verify(initData, s.cfg.BotToken, s.now())
	if err != nil {
		return s.fallbackOrFail(ctx, err, remoteIP)
	}

	s.audit(ctx, ident.UserID, MethodInitData, remoteIP)
	return Session{Identity: ident, Method: MethodInitData}, nil
}

// fallbackOrFail applies the development placeholder identity, or surfaces
// the verification error in production. The fallback never activates
// outside development mode.
func (s *Service) fallbackOrFail(ctx context.Context, cause error, remoteIP string) (Session, error) {
	if s.cfg.Mode != entitlements.Development {
		return Session{}, cause
	}

	if !errors.Is(cause, ErrAuthenticationRequired) {
		s.log.WithError(cause).Warn("init data rejected, using development placeholder identity")
	}
	if err := s.users.EnsureUser(ctx, PlaceholderUserID, placeholderUsername, placeholderFirstName); err != nil {
		// Provisioning failures are tolerated in development; the request
		// proceeds with the placeholder identity regardless.
		s.log.WithError(err).Warn("failed to ensure placeholder user")
	}
	s.audit(ctx, PlaceholderUserID, MethodDevFallback, remoteIP)
	return Session{
		Identity: telegramauth.Identity{
			UserID:    PlaceholderUserID,
			Username:  placeholderUsername,
			FirstName: placeholderFirstName,
		},
		Method: MethodDevFallback,
	}, nil
}

// CheckEntitlement reads the caller's plan state fresh from storage.
func (s *Service) CheckEntitlement(ctx context.Context, userID int64) entitlements.Decision {
	return s.gate.Check(ctx, userID)
}

// IssueSessionToken mints a short-lived bearer token for the identity and
// refreshes the stored profile from the verified payload, best-effort.
func (s *Service) IssueSessionToken(ctx context.Context, ident telegramauth.Identity) (string, time.Duration, error) {
	token, err := sessiontoken.Issue(ident.UserID, ident.Username, []byte(s.cfg.SessionSecret), s.cfg.SessionTTL)
	if err != nil {
		return "", 0, err
	}
	if err := s.users.UpdateProfile(ctx, ident.UserID, ident.Username, ident.FirstName, ident.LastName, ident.LanguageCode); err != nil {
		s.log.WithError(err).WithField("user_id", ident.UserID).Debug("profile refresh failed")
	}
	return token, s.cfg.SessionTTL, nil
}

func (s *Service) audit(ctx context.Context, userID int64, method, ip string) {
	if s.events == nil {
		return
	}
	if err := s.events.LogAuth(ctx, userID, method, ip); err != nil {
		s.log.WithError(err).Debug("auth event logging failed")
	}
}
