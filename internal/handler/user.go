package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booklendiverse/booklend-service/internal/model"
)

// SignUp godoc
// @Summary  Register a new user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    input  body      model.SignUpRequest  true  "credentials"
// @Success  201    {object}  model.AuthResponse
// @Failure  400    {object}  echo.HTTPError
// @Router   /api/users/signup [post]
func (h *Handler) SignUp(c echo.Context) error {
	var req model.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.userSvc.SignUp(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary  Log in
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    input  body      model.LoginRequest  true  "credentials"
// @Success  200    {object}  model.AuthResponse
// @Failure  401    {object}  echo.HTTPError
// @Router   /api/users/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.userSvc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout is a no-op on the server; tokens are stateless and simply discarded
// by the client.
func (h *Handler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (h *Handler) Me(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	user, err := h.userSvc.Me(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	user, err := h.userSvc.UpdateProfile(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) PublicProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userSvc.PublicProfile(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) RateUser(c echo.Context) error {
	raterID, err := userID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "userId")
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
	if err := h.userSvc.RateUser(c.Request().Context(), raterID, id, req); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Rating submitted"})
}

func (h *Handler) UserRatings(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ratings, err := h.userSvc.UserRatings(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ratings)
}
