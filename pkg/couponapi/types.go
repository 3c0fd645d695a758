// Package couponapi holds the JSON contract of the coupon admin API and a
// typed client for it. Field names are wire-exact; do not rename JSON tags.
package couponapi

// Coupon is one persisted coupon as returned by the list endpoint.
// DueDate is Unix seconds. Num is the redemption count and is omitted when
// the coupon has never been redeemed.
type Coupon struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	IsEnabled int     `json:"is_enabled"`
	Percent   float64 `json:"percent"`
	DueDate   int64   `json:"due_date"`
	Code      string  `json:"code"`
	Num       *int    `json:"num,omitempty"`
}

// CreateCouponParams is the body of a create request and the data of an edit request.
type CreateCouponParams struct {
	Title     string  `json:"title" binding:"required,max=100"`
	IsEnabled int     `json:"is_enabled" binding:"oneof=0 1"`
	Percent   float64 `json:"percent" binding:"required,gt=0,lte=100"`
	DueDate   int64   `json:"due_date" binding:"required,gt=0,lte=253402300799"`
	Code      string  `json:"code" binding:"required,min=3,max=32"`
}

// EditCouponParams replaces every mutable field of the coupon identified by ID.
type EditCouponParams struct {
	ID   string             `json:"id"`
	Data CreateCouponParams `json:"data"`
}

type Pagination struct {
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	HasPre      bool `json:"has_pre"`
	HasNext     bool `json:"has_next"`
}

// NewPagination derives HasPre and HasNext from the page window.
func NewPagination(totalPages, currentPage int) Pagination {
	return Pagination{
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		HasPre:      currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// Consistent reports whether the flags agree with the page window.
func (p Pagination) Consistent() bool {
	return p.HasPre == (p.CurrentPage > 1) && p.HasNext == (p.CurrentPage < p.TotalPages)
}

type GetCouponsResponse struct {
	Success    bool       `json:"success"`
	Coupons    []Coupon   `json:"coupons"`
	Pagination Pagination `json:"pagination"`
	Messages   []string   `json:"messages"`
}

type CouponResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SignInParams struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carries the bearer token for the admin routes. Expired is Unix seconds.
type SignInResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Expired int64  `json:"expired,omitempty"`
}

const (
	Disabled = 0
	Enabled  = 1
)

func IsEnabledFlag(enabled bool) int {
	if enabled {
		return Enabled
	}
	return Disabled
}

func (c Coupon) Enabled() bool {
	return c.IsEnabled == Enabled
}

func (p CreateCouponParams) Enabled() bool {
	return p.IsEnabled == Enabled
}
