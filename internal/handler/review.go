package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
)

// bookIDParam reads the book id whichever route the handler is mounted
// under: /books/:id/reviews or /reviews/book/:bookId.
func bookIDParam(c echo.Context) (int, error) {
	if c.Param("bookId") != "" {
		return pathID(c, "bookId")
	}
	return pathID(c, "id")
}

func (h *Handler) ListReviews(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	reviews, err := h.reviewSvc.ListReviews(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// AddReview godoc
// @Summary  Review a book
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    id     path      int                  true  "book id"
// @Param    input  body      model.ReviewRequest  true  "review"
// @Success  201    {object}  model.Review
// @Failure  400    {object}  echo.HTTPError
// @Router   /api/books/{id}/reviews [post]
// @Security ApiKeyAuth
func (h *Handler) AddReview(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	review, err := h.reviewSvc.AddReview(c.Request().Context(), uid, bookID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	review, err := h.reviewSvc.UpdateReview(c.Request().Context(), uid, bookID, reviewID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	if err := h.reviewSvc.DeleteReview(c.Request().Context(), uid, bookID, reviewID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Review deleted"})
}
