package utils

import (
	"testing"
	"time"
)

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Alice", "alice"},
		{"  bob \n", "bob"},
		{"carol.dpo", "carol.dpo"},
	}
	for _, test := range tests {
		if got := SanitizeUsername(test.input); got != test.expected {
			t.Errorf("SanitizeUsername(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestCheckUsernameFormat(t *testing.T) {
	valid := []string{"alice", "bob-controller", "carol.dpo", "x_99"}
	for _, username := range valid {
		if !CheckUsernameFormat(username) {
			t.Errorf("expected %q to be valid", username)
		}
	}

	invalid := []string{"", "ab", "With Space", "UPPER", "name@mail"}
	for _, username := range invalid {
		if CheckUsernameFormat(username) {
			t.Errorf("expected %q to be invalid", username)
		}
	}
}

func TestCheckPasswordFormat(t *testing.T) {
	valid := []string{"Str0ng-enough!", "aBcDeFg123456", "with spaces A1b2"}
	for _, password := range valid {
		if !CheckPasswordFormat(password) {
			t.Errorf("expected %q to be valid", password)
		}
	}

	invalid := []string{"", "short1A", "alllowercaseonly", "123456789012"}
	for _, password := range invalid {
		if CheckPasswordFormat(password) {
			t.Errorf("expected %q to be invalid", password)
		}
	}
}

func TestGenerateUniqueTokenString(t *testing.T) {
	a := GenerateUniqueTokenString()
	b := GenerateUniqueTokenString()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty tokens, got %q and %q", a, b)
	}
}

func TestAttemptWindows(t *testing.T) {
	now := time.Now().Unix()
	attempts := []int64{now - 3600, now - 100, now - 10, now}

	if HasMoreAttemptsRecently(attempts, 4, 300) {
		t.Error("only three attempts are inside the window")
	}
	if !HasMoreAttemptsRecently(attempts, 3, 300) {
		t.Error("three attempts are inside the window")
	}

	kept := RemoveAttemptsOlderThan(attempts, 300)
	if len(kept) != 3 {
		t.Errorf("expected 3 kept attempts, got %d", len(kept))
	}
}

// The login flow prunes before recording a new failure, so the stored list
// stays bounded even for an account that only ever fails.
func TestAttemptListStaysBounded(t *testing.T) {
	window := int64(300)
	now := time.Now().Unix()

	// long failure history, one attempt per minute, mostly outside the window
	attempts := []int64{}
	for i := 0; i < 500; i++ {
		attempts = append(attempts, now-int64(i)*60)
	}

	attempts = RemoveAttemptsOlderThan(attempts, window)
	attempts = append(attempts, now)

	if len(attempts) > 7 {
		t.Errorf("expected the pruned list to stay small, got %d entries", len(attempts))
	}
}
