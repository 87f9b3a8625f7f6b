package auth

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	username, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("Verify = %q, want %q", username, "alice")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := NewManager("secret-b").Verify(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := &Manager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := m.Generate("alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := m.Verify(token); err == nil {
			t.Errorf("Verify(%q) succeeded, want error", token)
		}
	}
}
