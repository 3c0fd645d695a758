package api

import (
	"net/http"

	reqdto "coupon-admin/internal/handler/dto/request"
	resdto "coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/httperr"
	"coupon-admin/internal/handler/middleware"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgAccountInactive    = "account is inactive"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary Sign in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body couponapi.SignInParams true "Credentials"
// @Success 200 {object} couponapi.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req reqdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := reqdto.BindingMessages(err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, messages[0], messages...)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msgInvalidCredentials)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, msgAccountInactive)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalFailure)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewSignInResponse(result))
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CurrentUserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "user not found")
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, msgAccountInactive)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalFailure)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewCurrentUserResponse(view))
}
