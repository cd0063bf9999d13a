// Package lang carries the caller's language through the request context.
package lang

import (
	"context"
	"strings"
)

type ctxKey struct{}

// Default is used when the payload carries no usable language code.
const Default = "en"

var supported = map[string]bool{"en": true, "uz": true, "ru": true}

// WithLanguage attaches a request language to ctx.
func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, ctxKey{}, language)
}

// FromContext reads the request language from ctx, falling back to Default.
func FromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKey{}).(string); ok && s != "" {
		return s
	}
	return Default
}

// Normalize reduces a Telegram language_code (e.g. "uz-UZ") to a supported
// two-letter code, or Default when unsupported.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	if supported[code] {
		return code
	}
	return Default
}
