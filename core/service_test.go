package core

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balansai/miniapp-backend/entitlements"
)

type fakeUsers struct {
	ensured map[int64]int
	failing bool
}

func (f *fakeUsers) EnsureUser(ctx context.Context, userID int64, username, firstName string) error {
	if f.failing {
		return errors.New("db down")
	}
	if f.ensured == nil {
		f.ensured = map[int64]int{}
	}
	f.ensured[userID]++
	return nil
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, userID int64, username, firstName, lastName, languageCode string) error {
	return nil
}

type fixedSubs struct {
	sub *entitlements.Subscription
}

func (f *fixedSubs) Subscription(ctx context.Context, userID int64) (*entitlements.Subscription, error) {
	return f.sub, nil
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(mode entitlements.Mode, users *fakeUsers) *Service {
	log := quietLog()
	gate := entitlements.NewGate(&fixedSubs{sub: &entitlements.Subscription{Kind: "business"}}, mode, log)
	return NewService(Config{
		BotToken:      "1234:token",
		Mode:          mode,
		SessionSecret: "secret",
		SessionTTL:    time.Hour,
		UpgradeURL:    "https://t.me/bot?start=upgrade",
	}, users, gate, nil, log)
}

// With no credentials, development mode substitutes the placeholder
// identity and provisions its user row; repeat calls stay idempotent.
func TestEstablishSessionDevFallback(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc := newTestService(entitlements.Development, users)

	for i := 0; i < 2; i++ {
		sess, err := svc.EstablishSession(context.Background(), "", "", "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, PlaceholderUserID, sess.Identity.UserID)
		assert.Equal(t, MethodDevFallback, sess.Method)
	}
	assert.Equal(t, 2, users.ensured[PlaceholderUserID])
}

// The same missing-credential scenario in production yields
// ErrAuthenticationRequired with no identity and no storage write.
func TestEstablishSessionProductionRejects(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc := newTestService(entitlements.Production, users)

	_, err := svc.EstablishSession(context.Background(), "", "", "127.0.0.1")
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.Empty(t, users.ensured)
}

// An invalid payload triggers the fallback only in development.
func TestEstablishSessionInvalidPayload(t *testing.T) {
	t.Parallel()

	dev := newTestService(entitlements.Development, &fakeUsers{})
	sess, err := dev.EstablishSession(context.Background(), "auth_date=1&hash=beef", "", "")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderUserID, sess.Identity.UserID)

	prod := newTestService(entitlements.Production, &fakeUsers{})
	_, err = prod.EstablishSession(context.Background(), "auth_date=1&hash=beef", "", "")
	assert.Error(t, err)
}

// A provisioning failure does not block the development fallback.
func TestEstablishSessionDevFallbackToleratesStoreError(t *testing.T) {
	t.Parallel()

	svc := newTestService(entitlements.Development, &fakeUsers{failing: true})
	sess, err := svc.EstablishSession(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderUserID, sess.Identity.UserID)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(entitlements.Production, &fakeUsers{})

	sess := Session{}
	sess.Identity.UserID = 42
	sess.Identity.Username = "owner"

	token, ttl, err := svc.IssueSessionToken(context.Background(), sess.Identity)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	got, err := svc.EstablishSession(context.Background(), "", token, "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Identity.UserID)
	assert.Equal(t, MethodSessionToken, got.Method)
}
