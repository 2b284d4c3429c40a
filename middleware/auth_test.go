package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ethno-platform-api/models"

	"github.com/gin-gonic/gin"
)

func authContext(t *testing.T, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/research/admin", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, recorder
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		c, recorder := authContext(t, tt.header)

		AuthMiddleware()(c)

		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tt.name, recorder.Code)
		}
		if !c.IsAborted() {
			t.Errorf("%s: request not aborted", tt.name)
		}
	}
}

func TestRequireReviewerAllowsReviewerAndAdmin(t *testing.T) {
	for _, roleID := range []int{models.RoleReviewer, models.RoleAdmin} {
		c, recorder := authContext(t, "")
		c.Set("roleID", roleID)

		RequireReviewer()(c)

		if c.IsAborted() {
			t.Errorf("role %d: request aborted, want pass", roleID)
		}
		if recorder.Code != http.StatusOK {
			t.Errorf("role %d: status = %d, want 200", roleID, recorder.Code)
		}
	}
}

func TestRequireReviewerRejectsMembers(t *testing.T) {
	c, recorder := authContext(t, "")
	c.Set("roleID", models.RoleMember)

	RequireReviewer()(c)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}
	if !c.IsAborted() {
		t.Error("request not aborted")
	}
}

func TestRequireAdminRejectsReviewers(t *testing.T) {
	c, recorder := authContext(t, "")
	c.Set("roleID", models.RoleReviewer)

	RequireAdmin()(c)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}
}

func TestRequireRoleWithoutIdentityIsForbidden(t *testing.T) {
	c, recorder := authContext(t, "")

	RequireRole(models.RoleAdmin)(c)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}
}
