package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "pw1" || digest == "" {
		t.Fatalf("digest must not equal or echo the plaintext: %q", digest)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", digest)
	}

	if !CheckPassword(digest, "pw1") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(digest, "pw2") {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two digests of the same password must differ (random salt)")
	}
}
