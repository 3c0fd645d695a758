package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query sides
var (
	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrDuplicateCouponCode = errors.New("duplicate coupon code")

	// Pagination errors
	ErrInvalidPage = errors.New("invalid page")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
