// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"fitlife/internal/database"
	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/internal/repository"
	"fitlife/internal/service"
	"fitlife/internal/validation"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立一般使用者並直接登入
// @Summary     註冊使用者
// @Description 建立角色為 user 的帳號，成功後設定 sid cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, opts Options) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body"})
		}
		email := validation.NormalizeEmail(req.Email)
		if err := validation.Registration(req.Name, email, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		user, err := service.RegisterUser(c.Request().Context(), db, req.Name, email, req.Password)
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, dto.HTTPError{Error: "Email already registered"})
		}
		if err != nil {
			middleware.Logger(c).Error().Err(err).Msg("register")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}

		if err := startSession(c, opts, user); err != nil {
			middleware.Logger(c).Error().Err(err).Msg("register: create session")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}
		return c.JSON(http.StatusCreated, authResponse("Registered and logged in", user))
	}
}
