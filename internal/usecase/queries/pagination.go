package queries

import (
	"coupon-admin/internal/pkg/errs"
)

// PageWindow is a resolved 1-based page over a result set of known size.
type PageWindow struct {
	Page       int
	TotalPages int
	Limit      int32
	Offset     int32
}

// TotalPages never returns less than one so an empty list still has a page.
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// ResolvePage rejects pages below one and clamps pages past the end.
func ResolvePage(requested int, total int64, pageSize int) (PageWindow, error) {
	if requested < 1 {
		return PageWindow{}, errs.ErrInvalidPage
	}
	if pageSize < 1 {
		return PageWindow{}, errs.Wrapf(errs.ErrInvalidPage, "page size %d", pageSize)
	}

	totalPages := TotalPages(total, pageSize)
	page := min(requested, totalPages)

	// #nosec G115 -- page and pageSize are bounded by config and the row count
	return PageWindow{
		Page:       page,
		TotalPages: totalPages,
		Limit:      int32(pageSize),
		Offset:     int32((page - 1) * pageSize),
	}, nil
}
