package api

import (
	"net/http"
	"strconv"

	reqdto "coupon-admin/internal/handler/dto/request"
	resdto "coupon-admin/internal/handler/dto/response"
	"coupon-admin/internal/handler/httperr"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/usecase/commands"
	"coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgCouponCreated   = "coupon created"
	msgCouponUpdated   = "coupon updated"
	msgCouponDeleted   = "coupon deleted"
	msgCouponNotFound  = "coupon not found"
	msgDuplicateCode   = "coupon code already exists"
	msgInvalidPage     = "page must be a positive integer"
	msgInternalFailure = "internal server error"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Description One page of coupons, newest first
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} couponapi.GetCouponsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidPage, msgInvalidPage, msgInvalidPage)
			return
		}
		page = n
	}

	result, err := h.q.List(c.Request.Context(), page)
	if err != nil {
		status, msg := couponErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg, msg)
		return
	}

	resp, err := resdto.NewGetCouponsResponse(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalFailure, msgInternalFailure)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body couponapi.CreateCouponParams true "Coupon fields"
// @Success 201 {object} couponapi.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/coupon [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := reqdto.BindingMessages(err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, messages[0], messages...)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	if _, err := h.cmds.Create(c.Request.Context(), in); err != nil {
		status, msg := couponErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg)
		return
	}

	c.JSON(http.StatusCreated, resdto.NewCouponResponse(msgCouponCreated))
}

// @Summary Edit coupon
// @Description Replaces every mutable field. The body id may be empty.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body couponapi.EditCouponParams true "Replacement fields"
// @Success 200 {object} couponapi.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/coupon/{id} [put]
func (h *CouponHandler) Edit(c *gin.Context) {
	pathID, err := reqdto.ParseCouponID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	var req reqdto.EditCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := reqdto.BindingMessages(err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, messages[0], messages...)
		return
	}

	id, err := req.ResolveID(pathID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	if err := h.cmds.Edit(c.Request.Context(), id, in); err != nil {
		status, msg := couponErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg)
		return
	}

	c.JSON(http.StatusOK, resdto.NewCouponResponse(msgCouponUpdated))
}

// @Summary Delete coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} couponapi.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/coupon/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := reqdto.ParseCouponID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		status, msg := couponErrorStatus(err)
		httperr.AbortWithError(c, status, err, msg)
		return
	}

	c.JSON(http.StatusOK, resdto.NewCouponResponse(msgCouponDeleted))
}

func couponErrorStatus(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidationFailed):
		return http.StatusBadRequest, errs.UserMessage(err)
	case errs.Is(err, errs.ErrInvalidPage):
		return http.StatusBadRequest, msgInvalidPage
	case errs.Is(err, errs.ErrCouponNotFound):
		return http.StatusNotFound, msgCouponNotFound
	case errs.Is(err, errs.ErrDuplicateCouponCode):
		return http.StatusConflict, msgDuplicateCode
	default:
		return http.StatusInternalServerError, msgInternalFailure
	}
}
