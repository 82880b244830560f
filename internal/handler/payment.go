package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/pkg/auth"
)

// CreateOrder godoc
// @Summary  Open a payment order for a book
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    input  body      model.CreateOrderRequest  true  "order"
// @Success  201    {object}  model.CreateOrderResponse
// @Failure  400    {object}  echo.HTTPError
// @Router   /api/payments/create-order [post]
// @Security ApiKeyAuth
func (h *Handler) CreateOrder(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.paymentSvc.CreateOrder(c.Request().Context(), uid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// VerifyPayment godoc
// @Summary  Verify a gateway payment signature and complete the transaction
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    input  body      model.VerifyPaymentRequest  true  "gateway callback payload"
// @Success  200    {object}  model.VerifyPaymentResponse
// @Failure  400    {object}  echo.HTTPError
// @Router   /api/payments/verify-payment [post]
// @Security ApiKeyAuth
func (h *Handler) VerifyPayment(c echo.Context) error {
	if _, err := userID(c); err != nil {
		return err
	}
	var req model.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.paymentSvc.VerifyPayment(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) MyTransactions(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	txs, err := h.paymentSvc.MyTransactions(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, txs)
}

func (h *Handler) TicketLookup(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	ticketID := c.Param("ticketId")
	if ticketID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ticketId is required")
	}
	role, _ := auth.GetRole(c.Request().Context())
	tx, err := h.paymentSvc.TicketLookup(c.Request().Context(), uid, role == auth.RoleAdmin, ticketID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tx)
}

func (h *Handler) AllTransactions(c echo.Context) error {
	txs, err := h.paymentSvc.AllTransactions(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, txs)
}
