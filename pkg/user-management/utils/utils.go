package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PASSWORD_MIN_LEN = 12
	PASSWORD_MAX_LEN = 512
)

func SanitizeUsername(username string) string {
	username = strings.ToLower(username)
	username = strings.Trim(username, " \n\r")
	return username
}

// CheckUsernameFormat allows short, url-safe account names only.
func CheckUsernameFormat(username string) bool {
	if len(username) < 3 || len(username) > 64 {
		return false
	}
	usernameRule := regexp.MustCompile(`^[a-z0-9._-]+$`)
	return usernameRule.MatchString(username)
}

// CheckPasswordFormat to check if password fulfills password rules
func CheckPasswordFormat(password string) bool {
	pl := len(password)
	if pl < PASSWORD_MIN_LEN || pl > PASSWORD_MAX_LEN {
		return false
	}

	var res = 0

	lowercase := regexp.MustCompile("[a-z]")
	uppercase := regexp.MustCompile("[A-Z]")
	number := regexp.MustCompile(`\d`)
	symbol := regexp.MustCompile(`\W`)

	if lowercase.MatchString(password) {
		res++
	}
	if uppercase.MatchString(password) {
		res++
	}
	if number.MatchString(password) {
		res++
	}
	if symbol.MatchString(password) {
		res++
	}
	return res > 2
}

func GenerateUniqueTokenString() string {
	return uuid.NewString()
}

// HasMoreAttemptsRecently reports whether at least maxAttempts of the given
// unix timestamps fall inside the past window.
func HasMoreAttemptsRecently(attempts []int64, maxAttempts int, windowSeconds int64) bool {
	cutoff := time.Now().Unix() - windowSeconds
	count := 0
	for _, ts := range attempts {
		if ts >= cutoff {
			count++
		}
	}
	return count >= maxAttempts
}

// RemoveAttemptsOlderThan drops unix timestamps older than the given window.
func RemoveAttemptsOlderThan(attempts []int64, windowSeconds int64) []int64 {
	cutoff := time.Now().Unix() - windowSeconds
	kept := make([]int64, 0, len(attempts))
	for _, ts := range attempts {
		if ts >= cutoff {
			kept = append(kept, ts)
		}
	}
	return kept
}
