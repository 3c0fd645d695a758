//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coupon-admin/internal/domain/user"
	"coupon-admin/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (s stubValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return s.userID, s.role, s.err
}

func newRouter(v stubValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	r.GET("/guarded", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		validator  stubValidator
		minRole    user.Role
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			validator:  stubValidator{userID: userID, role: user.RoleAdmin},
			minRole:    user.RoleViewer,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"access token required","messages":["access token required"]}`,
		},
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			validator:  stubValidator{userID: userID, role: user.RoleAdmin},
			minRole:    user.RoleViewer,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"access token required","messages":["access token required"]}`,
		},
		{
			name:       "invalid token",
			header:     "Bearer nope",
			validator:  stubValidator{err: errors.New("invalid token")},
			minRole:    user.RoleViewer,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"invalid or expired token","messages":["invalid or expired token"]}`,
		},
		{
			name:       "role too low",
			header:     "Bearer ok",
			validator:  stubValidator{userID: userID, role: user.RoleViewer},
			minRole:    user.RoleOperator,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"success":false,"message":"insufficient permissions","messages":["insufficient permissions"]}`,
		},
		{
			name:       "admin passes operator gate",
			header:     "Bearer ok",
			validator:  stubValidator{userID: userID, role: user.RoleAdmin},
			minRole:    user.RoleOperator,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(tt.validator, tt.minRole)

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}
