package queries

import (
	"time"

	"github.com/google/uuid"
)

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	IsEnabled  bool      `json:"is_enabled"`
	Percent    float64   `json:"percent"`
	DueDate    time.Time `json:"due_date"`
	Code       string    `json:"code"`
	UsageCount *int      `json:"usage_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CouponPage is one page of the admin coupon list.
type CouponPage struct {
	Items       []*CouponView
	CurrentPage int
	TotalPages  int
	TotalCount  int64
}

type CouponStats struct {
	Total   int64
	Enabled int64
	Expired int64
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
