package utils

import (
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		input      string
		expected   time.Duration
		shouldFail bool
	}{
		// typical token lifetimes from the service config
		{"48h", 48 * time.Hour, false},
		{"15m", 15 * time.Minute, false},
		{"1h30m", 90 * time.Minute, false},
		{"30s", 30 * time.Second, false},
		// values a config file must not get away with
		{"", 0, true},
		{"48", 0, true},
		{"2d", 0, true},
		{"two hours", 0, true},
	}

	for _, test := range tests {
		result, err := ParseDurationString(test.input)
		if test.shouldFail {
			if err == nil {
				t.Errorf("expected error for input %q, but got nil", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("expected no error for input %q, but got %s", test.input, err)
		}
		if result != test.expected {
			t.Errorf("expected %s for input %q, but got %s", test.expected, test.input, result)
		}
	}
}
