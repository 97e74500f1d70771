package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func runRoleGuard(t *testing.T, role string, guard gin.HandlerFunc) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/app/update", nil)
	c.Set(PrincipalKey, Principal{ID: "u1", Name: "Test User", Role: role})

	guard(c)
	return c, w
}

func TestRequireRole(t *testing.T) {
	t.Run("dpo passes a controller-or-dpo guard", func(t *testing.T) {
		c, _ := runRoleGuard(t, "DPO", RequireRole("CONTROLLER", "DPO"))
		if c.IsAborted() {
			t.Error("DPO must be allowed where controllers and DPOs are")
		}
	})

	t.Run("controller passes a controller-or-dpo guard", func(t *testing.T) {
		c, _ := runRoleGuard(t, "CONTROLLER", RequireRole("CONTROLLER", "DPO"))
		if c.IsAborted() {
			t.Error("controller must be allowed")
		}
	})

	t.Run("subject is blocked with 403", func(t *testing.T) {
		c, w := runRoleGuard(t, "SUBJECT", RequireRole("CONTROLLER", "DPO"))
		if !c.IsAborted() {
			t.Error("subject must be blocked")
		}
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})
}
