package response

import (
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"
	"coupon-admin/pkg/couponapi"
)

func NewSignInResponse(result *commands.LoginResult) couponapi.SignInResponse {
	return couponapi.SignInResponse{
		Success: true,
		Message: "signed in",
		Token:   result.Token,
		Expired: result.ExpiresAt.Unix(),
	}
}

type CurrentUserResponse struct {
	Success   bool   `json:"success"`
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LastLogin *int64 `json:"last_login,omitempty"`
}

func NewCurrentUserResponse(view *queries.AuthorizedUserView) CurrentUserResponse {
	resp := CurrentUserResponse{
		Success: true,
		ID:      view.ID.String(),
		Email:   view.Email,
		Role:    view.Role,
	}
	if view.LastLogin != nil {
		ts := view.LastLogin.Unix()
		resp.LastLogin = &ts
	}
	return resp
}
