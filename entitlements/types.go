// Package entitlements decides whether a user holds an active paid plan.
package entitlements

import "context"

// Mode selects the failure policy when storage is unreachable during a
// check: Development fails open, Production fails closed.
type Mode int

const (
	Production Mode = iota
	Development
)

func (m Mode) String() string {
	if m == Development {
		return "development"
	}
	return "production"
}

// Subscription is the raw plan state read from the user record. ExpiresAt
// is kept as written; the upstream bot stores assorted timestamp encodings.
type Subscription struct {
	Kind      string
	ExpiresAt string
}

// SubscriptionSource reads the subscription for a user. A nil Subscription
// with a nil error means no record exists.
type SubscriptionSource interface {
	Subscription(ctx context.Context, userID int64) (*Subscription, error)
}

// Decision is the outcome of an entitlement check.
type Decision struct {
	Active bool   `json:"active"`
	Reason string `json:"reason"`
}

// Decision reasons.
const (
	ReasonActive         = "active"
	ReasonNoSubscription = "no_subscription"
	ReasonNotBusiness    = "no_business_plan"
	ReasonExpired        = "expired"
	ReasonStorageError   = "storage_error"
)
