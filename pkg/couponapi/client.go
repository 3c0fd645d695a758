package couponapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gopkg.in/resty.v1"
)

const (
	signInPath  = "/api/auth/signin"
	couponsPath = "/api/admin/coupons"
	couponPath  = "/api/admin/coupon"
)

// Client talks to the coupon admin API. Failure envelopes are decoded like
// successful ones, so callers inspect Success/Message rather than the status.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetHostURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// WithToken sets the bearer token sent with every subsequent request.
func (c *Client) WithToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResponse, error) {
	var out SignInResponse
	_, err := c.do(ctx, http.MethodPost, signInPath, SignInParams{Email: email, Password: password}, nil, &out)
	if err != nil {
		return nil, err
	}
	if out.Success {
		c.WithToken(out.Token)
	}
	return &out, nil
}

func (c *Client) ListCoupons(ctx context.Context, page int) (*GetCouponsResponse, error) {
	var out GetCouponsResponse
	query := map[string]string{"page": strconv.Itoa(page)}
	if _, err := c.do(ctx, http.MethodGet, couponsPath, nil, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCoupon(ctx context.Context, params CreateCouponParams) (*CouponResponse, error) {
	var out CouponResponse
	if _, err := c.do(ctx, http.MethodPost, couponPath, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EditCoupon(ctx context.Context, params EditCouponParams) (*CouponResponse, error) {
	var out CouponResponse
	if _, err := c.do(ctx, http.MethodPut, couponPath+"/"+params.ID, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id string) (*CouponResponse, error) {
	var out CouponResponse
	if _, err := c.do(ctx, http.MethodDelete, couponPath+"/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string, out any) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError && len(resp.Body()) == 0 {
		return resp, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode())
	}
	return resp, nil
}
