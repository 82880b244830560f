package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
)

// Borrow godoc
// @Summary  Borrow a book
// @Tags     borrow
// @Produce  json
// @Param    bookId  path      int  true  "book id"
// @Success  200     {object}  model.BorrowResponse
// @Failure  400     {object}  echo.HTTPError
// @Failure  404     {object}  echo.HTTPError
// @Router   /api/borrow/request/{bookId} [post]
// @Security ApiKeyAuth
func (h *Handler) Borrow(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	resp, err := h.borrowSvc.Borrow(c.Request().Context(), uid, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Return(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.borrowSvc.Return(c.Request().Context(), uid, bookID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptReturn(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	resp, err := h.borrowSvc.AcceptReturn(c.Request().Context(), uid, bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) MyBorrowed(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	books, err := h.borrowSvc.MyBorrowed(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) MyBorrowHistory(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	books, err := h.borrowSvc.MyBorrowHistory(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) MyLent(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	books, err := h.borrowSvc.MyLent(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ActiveRequests(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	books, err := h.borrowSvc.ActiveRequests(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}
