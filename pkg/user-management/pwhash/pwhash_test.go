package pwhash

import (
	"strings"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("unexpected hash format: %s", hash)
	}

	t.Run("matching password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if !match {
			t.Error("expected password to match")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "wrong password")
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if match {
			t.Error("expected password not to match")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		otherHash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if hash == otherHash {
			t.Error("two hashes of the same password must differ")
		}
	})
}

func TestComparePasswordWithInvalidHash(t *testing.T) {
	if _, err := ComparePasswordWithHash("not a hash", "pw"); err == nil {
		t.Error("expected error for malformed hash")
	}
	if _, err := ComparePasswordWithHash("$argon2i$v=19$m=65536,t=4,p=2$c2FsdA$aGFzaA", "pw"); err == nil {
		t.Error("expected error for unsupported variant")
	}
}
