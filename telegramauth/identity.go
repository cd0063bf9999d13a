package telegramauth

import "encoding/json"

// Identity is the authenticated caller extracted from a verified payload.
// It lives only for the duration of the request; nothing persists it.
type Identity struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

type userField struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	LanguageCode string `json:"language_code"`
}

// parseIdentity decodes the serialized user JSON. The id is required;
// everything else is optional and maps to the zero value when absent.
func parseIdentity(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, ErrMalformedUserField
	}
	var u userField
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return Identity{}, ErrMalformedUserField
	}
	if u.ID <= 0 {
		return Identity{}, ErrMalformedUserField
	}
	return Identity{
		UserID:       u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		LanguageCode: u.LanguageCode,
	}, nil
}
