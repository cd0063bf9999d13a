package entitlements

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// activeKinds are the subscription kinds that grant access outright.
var activeKinds = map[string]bool{
	"business":       true,
	"business_trial": true,
	"trial":          true,
}

// Gate evaluates plan entitlement against a subscription source.
type Gate struct {
	src  SubscriptionSource
	mode Mode
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewGate(src SubscriptionSource, mode Mode, log logrus.FieldLogger) *Gate {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Gate{src: src, mode: mode, log: log, now: time.Now}
}

// Check reads the user's subscription fresh from storage and decides
// whether it grants access. No result is cached across requests.
func (g *Gate) Check(ctx context.Context, userID int64) Decision {
	sub, err := g.src.Subscription(ctx, userID)
	if err != nil {
		// Fail open only in development; production defaults to denied.
		g.log.WithError(err).WithField("user_id", userID).Warn("entitlement check: storage error")
		return Decision{Active: g.mode == Development, Reason: ReasonStorageError}
	}
	if sub == nil {
		return Decision{Active: false, Reason: ReasonNoSubscription}
	}

	kind := strings.ToLower(strings.TrimSpace(sub.Kind))
	if kind == "" || (!activeKinds[kind] && !strings.Contains(kind, "business")) {
		return Decision{Active: false, Reason: ReasonNotBusiness}
	}

	if strings.TrimSpace(sub.ExpiresAt) == "" {
		return Decision{Active: true, Reason: ReasonActive}
	}

	expiresAt, ok := ParseExpiry(sub.ExpiresAt)
	if !ok {
		// Unparseable expiry grants access. This fail-open policy is a
		// deliberate product decision carried over from the paywall's
		// original behavior, not an oversight; flip only with sign-off.
		g.log.WithField("user_id", userID).WithField("expires_at", sub.ExpiresAt).
			Warn("entitlement check: unparseable expiry, treating as active")
		return Decision{Active: true, Reason: ReasonActive}
	}

	if expiresAt.Before(g.now().UTC()) {
		return Decision{Active: false, Reason: ReasonExpired}
	}
	return Decision{Active: true, Reason: ReasonActive}
}
