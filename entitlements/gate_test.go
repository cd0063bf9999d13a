package entitlements

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	sub *Subscription
	err error
}

func (s *stubSource) Subscription(ctx context.Context, userID int64) (*Subscription, error) {
	return s.sub, s.err
}

func newTestGate(src SubscriptionSource, mode Mode) *Gate {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewGate(src, mode, log)
}

func TestCheckActiveKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		sub    *Subscription
		active bool
		reason string
	}{
		{"business no expiry", &Subscription{Kind: "business"}, true, ReasonActive},
		{"trial no expiry", &Subscription{Kind: "trial"}, true, ReasonActive},
		{"business uppercase", &Subscription{Kind: "Business"}, true, ReasonActive},
		{"contains business", &Subscription{Kind: "business_pro_annual"}, true, ReasonActive},
		{"free plan", &Subscription{Kind: "free"}, false, ReasonNotBusiness},
		{"empty kind", &Subscription{Kind: ""}, false, ReasonNotBusiness},
		{"no record", nil, false, ReasonNoSubscription},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGate(&stubSource{sub: tc.sub}, Production)
			d := g.Check(context.Background(), 42)
			assert.Equal(t, tc.active, d.Active)
			assert.Equal(t, tc.reason, d.Reason)
		})
	}
}

func TestCheckExpiry(t *testing.T) {
	t.Parallel()

	future := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02 15:04:05")
	past := time.Now().UTC().Add(-24 * time.Hour).Format("2006-01-02 15:04:05")

	g := newTestGate(&stubSource{sub: &Subscription{Kind: "business_trial", ExpiresAt: future}}, Production)
	d := g.Check(context.Background(), 1)
	assert.True(t, d.Active)

	g = newTestGate(&stubSource{sub: &Subscription{Kind: "business", ExpiresAt: past}}, Production)
	d = g.Check(context.Background(), 1)
	assert.False(t, d.Active)
	assert.Equal(t, ReasonExpired, d.Reason)
}

// An expiry that no layout can parse grants access (documented fail-open).
func TestCheckUnparseableExpiryFailsOpen(t *testing.T) {
	t.Parallel()

	g := newTestGate(&stubSource{sub: &Subscription{Kind: "business", ExpiresAt: "next tuesday"}}, Production)
	d := g.Check(context.Background(), 1)
	assert.True(t, d.Active)
}

// Storage errors fail open in development and closed in production.
func TestCheckStorageErrorByMode(t *testing.T) {
	t.Parallel()

	src := &stubSource{err: errors.New("connection refused")}

	d := newTestGate(src, Development).Check(context.Background(), 1)
	assert.True(t, d.Active)
	assert.Equal(t, ReasonStorageError, d.Reason)

	d = newTestGate(src, Production).Check(context.Background(), 1)
	assert.False(t, d.Active)
	assert.Equal(t, ReasonStorageError, d.Reason)
}

func TestParseExpiryLayouts(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]time.Time{
		"2025-06-01 10:30:00":   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		"2025-06-01":            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"2025-06-01T10:30:00":   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		"2025-06-01T10:30:00Z":  time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		"2025-06-01T10:30:00+02:00": time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
	} {
		got, ok := ParseExpiry(raw)
		assert.True(t, ok, raw)
		assert.True(t, got.UTC().Equal(want), "%s: got %v want %v", raw, got, want)
	}

	_, ok := ParseExpiry("")
	assert.False(t, ok)
	_, ok = ParseExpiry("soon")
	assert.False(t, ok)
}
