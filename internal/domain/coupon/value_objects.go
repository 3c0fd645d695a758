package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be at most 100 characters")
	ErrInvalidPercent     = errors.New("percent must be greater than 0 and at most 100")
	ErrInvalidCouponCode  = errors.New("code must be 3-32 characters of letters, digits, '-' or '_'")
	ErrInvalidDueDate     = errors.New("due_date must be a unix timestamp between 1 and 253402300799")
	ErrInvalidEnabledFlag = errors.New("is_enabled must be 0 or 1")
)

const (
	MaxTitleLength = 100
	MinPercent     = 0
	MaxPercent     = 100
	// MaxDueDate is 9999-12-31T23:59:59Z; later values overflow timestamptz encoding.
	MaxDueDate = 253402300799
)

var couponCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

type Title string

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return Title(s), nil
}

func (t Title) String() string {
	return string(t)
}

// Percent is the discount rate, exclusive of 0 and inclusive of 100,
// kept to two decimal places.
type Percent float64

func NewPercent(p float64) (Percent, error) {
	p = math.Round(p*100) / 100
	if !(p > MinPercent && p <= MaxPercent) {
		return 0, ErrInvalidPercent
	}
	return Percent(p), nil
}

func (p Percent) Float64() float64 {
	return float64(p)
}

// Code keeps the casing the operator typed; uniqueness is checked on Normalized.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !couponCodeRegex.MatchString(code) {
		return "", ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Normalized() string {
	return strings.ToLower(string(c))
}

type DueDate struct {
	t time.Time
}

func NewDueDateFromUnix(sec int64) (DueDate, error) {
	if sec <= 0 || sec > MaxDueDate {
		return DueDate{}, ErrInvalidDueDate
	}
	return DueDate{t: time.Unix(sec, 0).UTC()}, nil
}

func (d DueDate) Time() time.Time { return d.t }
func (d DueDate) Unix() int64     { return d.t.Unix() }

// ParseEnabledFlag accepts only the wire values 0 and 1.
func ParseEnabledFlag(v int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidEnabledFlag
	}
}
