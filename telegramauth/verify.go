// Package telegramauth validates Telegram Mini App initData payloads.
//
// The payload is a URL-encoded set of key/value pairs signed by the Telegram
// client. Every key except "hash" participates in the signature; the shared
// secret is derived from the bot token.
package telegramauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MaxAge is the accepted age of a payload's auth_date.
const MaxAge = 24 * time.Hour

// Verify checks the signature and freshness of initData and returns the
// embedded identity. now supplies the verifier's wall clock.
func Verify(initData, botToken string, now time.Time) (Identity, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return Identity{}, fmt.Errorf("parse init data: %w", err)
	}

	// First value per key, matching standard query-string semantics.
	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}

	receivedHash, ok := fields["hash"]
	if !ok || receivedHash == "" {
		return Identity{}, ErrMissingSignature
	}
	delete(fields, "hash")

	calculated := computeHash(fields, botToken)
	if !hmac.Equal([]byte(calculated), []byte(strings.ToLower(receivedHash))) {
		return Identity{}, ErrInvalidSignature
	}

	if err := checkFreshness(fields["auth_date"], now); err != nil {
		return Identity{}, err
	}

	return parseIdentity(fields["user"])
}

// computeHash builds the canonical check string (keys sorted, joined as
// key=value lines) and signs it with HMAC-SHA256 keyed by
// HMAC-SHA256("WebAppData", botToken).
func computeHash(fields map[string]string, botToken string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}

	keyMAC := hmac.New(sha256.New, []byte("WebAppData"))
	keyMAC.Write([]byte(botToken))
	secretKey := keyMAC.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(b.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

// checkFreshness rejects payloads issued more than MaxAge ago. A missing or
// zero auth_date skips the check; clients that predate the field would be
// locked out otherwise. Deliberately permissive, flagged for hardening.
func checkFreshness(authDate string, now time.Time) error {
	if authDate == "" {
		return nil
	}
	ts, err := strconv.ParseInt(authDate, 10, 64)
	if err != nil || ts == 0 {
		return nil
	}
	if now.Sub(time.Unix(ts, 0)) > MaxAge {
		return ErrStalePayload
	}
	return nil
}
