package sessiontoken

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Issue(99281932, "andrew_r", secret, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := Verify(tok, secret)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 99281932 {
		t.Fatalf("user id mismatch: got %d", claims.UserID)
	}
	if claims.Username != "andrew_r" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := Issue(1, "", secret, -time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := Verify(tok, secret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Issue(1, "", []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := Verify(tok, []byte("wrong")); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
