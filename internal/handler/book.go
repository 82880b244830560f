package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
)

// ListBooks godoc
// @Summary  Browse the catalog
// @Tags     books
// @Produce  json
// @Param    genre      query     string  false  "comma-separated genres"
// @Param    available  query     bool    false  "only available books"
// @Param    minRating  query     number  false  "minimum rating"
// @Param    maxPrice   query     number  false  "maximum price"
// @Param    search     query     string  false  "title/author/description search"
// @Param    sort       query     string  false  "newest|rating|priceAsc|priceDesc|popularity"
// @Success  200        {array}   model.Book
// @Router   /api/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	var (
		filter model.BookFilter
		err    error
	)
	if genre := c.QueryParam("genre"); genre != "" && genre != "all" {
		filter.Genre = strings.Split(genre, ",")
	}
	if available := c.QueryParam("available"); available != "" {
		if filter.AvailableOnly, err = strconv.ParseBool(available); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
	}
	if minRating := c.QueryParam("minRating"); minRating != "" {
		if filter.MinRating, err = strconv.ParseFloat(minRating, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "minRating is invalid")
		}
	}
	if maxPrice := c.QueryParam("maxPrice"); maxPrice != "" {
		if filter.MaxPrice, err = strconv.ParseFloat(maxPrice, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxPrice is invalid")
		}
	}
	filter.Search = c.QueryParam("search")
	filter.Sort = c.QueryParam("sort")

	books, err := h.bookSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  Book details with reviews and borrowing history
// @Tags     books
// @Produce  json
// @Param    id   path      int  true  "book id"
// @Success  200  {object}  model.BookDetail
// @Failure  404  {object}  echo.HTTPError
// @Router   /api/books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.bookSvc.GetBookDetail(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateBook(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), ownerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), uid, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), uid, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted successfully"})
}

// BooksByUser lists another member's public catalog.
func (h *Handler) BooksByUser(c echo.Context) error {
	uid, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	books, err := h.bookSvc.MyBooks(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Recommendations(c echo.Context) error {
	uid, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	books, err := h.bookSvc.Recommendations(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ToggleBookmark(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.bookSvc.ToggleBookmark(c.Request().Context(), uid, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
