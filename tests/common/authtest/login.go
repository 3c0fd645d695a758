//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"coupon-admin/pkg/couponapi"
	"coupon-admin/tests/common/dbtest"
	"coupon-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func SignIn(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signin",
		couponapi.SignInParams{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp couponapi.SignInResponse
	httptest.DecodeResponseBody(t, w, &resp)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token, "token missing from sign-in response")

	return resp.Token
}

func CreateAndSignIn(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return SignIn(t, router, email, dbtest.DefaultPassword)
}
