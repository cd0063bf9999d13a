package authgin

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/core"
	"github.com/balansai/miniapp-backend/entitlements"
	"github.com/balansai/miniapp-backend/ledger"
	"github.com/balansai/miniapp-backend/staff"
	"github.com/balansai/miniapp-backend/warehouse"
)

const testBotToken = "12345:test-bot-token"

type fakeUsers struct {
	sub     *entitlements.Subscription
	subErr  error
	ensured []int64
}

func (f *fakeUsers) EnsureUser(ctx context.Context, userID int64, username, firstName string) error {
	f.ensured = append(f.ensured, userID)
	return nil
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, userID int64, username, firstName, lastName, languageCode string) error {
	return nil
}

func (f *fakeUsers) Subscription(ctx context.Context, userID int64) (*entitlements.Subscription, error) {
	return f.sub, f.subErr
}

func newTestRouter(t *testing.T, mode entitlements.Mode, users *fakeUsers) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	gate := entitlements.NewGate(users, mode, log)
	svc := core.NewService(core.Config{
		BotToken:      testBotToken,
		Mode:          mode,
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
		UpgradeURL:    "https://t.me/upgrade",
	}, users, gate, nil, log)

	return NewRouter(RouterDeps{
		Service:   svc,
		Warehouse: warehouse.NewStore(nil),
		Ledger:    ledger.NewStore(nil),
		Staff:     staff.NewStore(nil),
		Log:       log,
		StaticDir: t.TempDir(),
	})
}

// signInitData produces a query string carrying a valid signature for the
// test bot token.
func signInitData(t *testing.T, values url.Values) string {
	t.Helper()
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func freshInitData(t *testing.T) string {
	t.Helper()
	v := url.Values{}
	v.Set("user", `{"id":777000,"first_name":"Ada","username":"ada","language_code":"en"}`)
	v.Set("auth_date", fmt.Sprintf("%d", time.Now().Unix()))
	v.Set("query_id", "AAF_test")
	return signInitData(t, v)
}

func TestSessionMiddleware_ProductionRejectsAnonymous(t *testing.T) {
	r := newTestRouter(t, entitlements.Production, &fakeUsers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/check-plan", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Fatalf("expected error message, got %s", w.Body.String())
	}
}

func TestSessionMiddleware_DevelopmentFallback(t *testing.T) {
	users := &fakeUsers{}
	r := newTestRouter(t, entitlements.Development, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/check-plan", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success         bool    `json:"success"`
		HasBusinessPlan bool    `json:"has_business_plan"`
		Redirect        *string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.HasBusinessPlan {
		t.Fatalf("expected inactive plan for placeholder user, got %s", w.Body.String())
	}
	if body.Redirect == nil || *body.Redirect != "https://t.me/upgrade" {
		t.Fatalf("expected upgrade redirect, got %s", w.Body.String())
	}
	if len(users.ensured) == 0 || users.ensured[0] != core.PlaceholderUserID {
		t.Fatalf("expected placeholder user provisioned, got %v", users.ensured)
	}
}

func TestAuthSession_InitDataToBearerToken(t *testing.T) {
	users := &fakeUsers{sub: &entitlements.Subscription{Kind: "business"}}
	r := newTestRouter(t, entitlements.Production, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/session", nil)
	req.Header.Set(InitDataHeader, freshInitData(t))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Token == "" || body.ExpiresIn != 3600 {
		t.Fatalf("unexpected token response: %s", w.Body.String())
	}

	// The issued token must authenticate a follow-up request on its own.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/check-plan", nil)
	req2.Header.Set("Authorization", "Bearer "+body.Token)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestRequireEntitlement(t *testing.T) {
	chat := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ai/chat",
			bytes.NewReader([]byte(`{"message":"hello"}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(InitDataHeader, freshInitData(t))
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("no subscription is forbidden", func(t *testing.T) {
		r := newTestRouter(t, entitlements.Production, &fakeUsers{})
		w := chat(r)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["redirect"] != "https://t.me/upgrade" {
			t.Fatalf("expected redirect in 403 body, got %s", w.Body.String())
		}
	})

	t.Run("business plan passes", func(t *testing.T) {
		r := newTestRouter(t, entitlements.Production,
			&fakeUsers{sub: &entitlements.Subscription{Kind: "business"}})
		w := chat(r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"response"`) {
			t.Fatalf("expected assistant response, got %s", w.Body.String())
		}
	})
}
