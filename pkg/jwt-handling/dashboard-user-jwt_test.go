package jwthandling

import (
	"testing"
	"time"
)

func TestDashboardUserToken(t *testing.T) {
	signKey := "test-sign-key"

	token, err := GenerateNewDashboardUserToken(time.Minute, "user1", "Alice", "CONTROLLER", signKey)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	t.Run("valid token", func(t *testing.T) {
		claims, valid, err := ValidateDashboardUserToken(token, signKey)
		if err != nil || !valid {
			t.Fatalf("expected valid token, err: %v", err)
		}
		if claims.ID != "user1" || claims.Name != "Alice" || claims.Role != "CONTROLLER" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong sign key", func(t *testing.T) {
		_, valid, err := ValidateDashboardUserToken(token, "other-key")
		if valid || err == nil {
			t.Error("expected validation to fail with wrong key")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateNewDashboardUserToken(-time.Minute, "user1", "Alice", "CONTROLLER", signKey)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		_, valid, err := ValidateDashboardUserToken(expired, signKey)
		if valid || err == nil {
			t.Error("expected validation to fail for expired token")
		}
	})
}
