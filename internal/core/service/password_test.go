package service

import (
	"errors"
	"testing"

	"github.com/boardhub/board-api/internal/core/domain"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("Secret1!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret1!" {
		t.Fatalf("hash must not equal the plaintext")
	}

	ok, err := h.Verify("Secret1!", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("correct password must verify")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("password-one")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("password-two", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestBcryptHasher_SaltUniqueness(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ (fresh salt per call)")
	}

	for _, hash := range []string{first, second} {
		ok, err := h.Verify("same-password", hash)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify against the original password (ok=%v err=%v)", ok, err)
		}
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := NewBcryptHasher(4)
	if _, err := h.Hash(""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)
	if _, err := h.Verify("whatever", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("malformed stored hash must be an error, not a silent mismatch")
	}
}
