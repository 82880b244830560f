package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
)

func (h *Handler) ListPosts(c echo.Context) error {
	var (
		filter model.PostFilter
		err    error
	)
	filter.Search = c.QueryParam("search")
	filter.Tag = c.QueryParam("tag")
	if page := c.QueryParam("page"); page != "" {
		if filter.Page, err = strconv.Atoi(page); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if filter.Limit, err = strconv.Atoi(limit); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	posts, err := h.forumSvc.ListPosts(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *Handler) CreatePost(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	var req model.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	post, err := h.forumSvc.CreatePost(c.Request().Context(), uid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *Handler) GetPost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.forumSvc.GetPost(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *Handler) AddComment(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	comment, err := h.forumSvc.AddComment(c.Request().Context(), uid, postID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *Handler) ToggleLike(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.forumSvc.ToggleLike(c.Request().Context(), uid, postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
