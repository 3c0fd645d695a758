package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Attributes are the mutable fields shared by create and edit.
type Attributes struct {
	Title     string
	IsEnabled bool
	Percent   float64
	DueDate   int64
	Code      string
}

// Validate runs the same checks NewCoupon and Replace apply.
func (a Attributes) Validate() error {
	var probe Coupon
	return probe.apply(a)
}

type Coupon struct {
	id         uuid.UUID
	title      Title
	isEnabled  bool
	percent    Percent
	dueDate    DueDate
	code       Code
	usageCount *int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCoupon(attrs Attributes) (*Coupon, error) {
	c := &Coupon{id: uuid.New()}
	if err := c.apply(attrs); err != nil {
		return nil, err
	}
	return c, nil
}

// ReconstructCoupon rehydrates a persisted coupon without re-running validation.
func ReconstructCoupon(
	id uuid.UUID,
	title string,
	isEnabled bool,
	percent float64,
	dueDate time.Time,
	code string,
	usageCount *int,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:         id,
		title:      Title(title),
		isEnabled:  isEnabled,
		percent:    Percent(percent),
		dueDate:    DueDate{t: dueDate.UTC()},
		code:       Code(code),
		usageCount: usageCount,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Replace overwrites every mutable field. The coupon is left untouched on error.
func (c *Coupon) Replace(attrs Attributes) error {
	next := *c
	if err := next.apply(attrs); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Coupon) apply(attrs Attributes) error {
	title, err := NewTitle(attrs.Title)
	if err != nil {
		return err
	}
	percent, err := NewPercent(attrs.Percent)
	if err != nil {
		return err
	}
	dueDate, err := NewDueDateFromUnix(attrs.DueDate)
	if err != nil {
		return err
	}
	code, err := NewCode(attrs.Code)
	if err != nil {
		return err
	}

	c.title = title
	c.isEnabled = attrs.IsEnabled
	c.percent = percent
	c.dueDate = dueDate
	c.code = code
	return nil
}

func (c *Coupon) IsExpiredAt(t time.Time) bool {
	return !t.Before(c.dueDate.Time())
}

func (c *Coupon) IsActiveAt(t time.Time) bool {
	return c.isEnabled && !c.IsExpiredAt(t)
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Title() Title         { return c.title }
func (c *Coupon) IsEnabled() bool      { return c.isEnabled }
func (c *Coupon) Percent() Percent     { return c.percent }
func (c *Coupon) DueDate() DueDate     { return c.dueDate }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) UsageCount() *int     { return c.usageCount }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }
