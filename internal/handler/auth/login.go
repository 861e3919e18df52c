// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"fitlife/internal/database"
	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並建立 session
// @Summary     登入使用者
// @Description 驗證成功後設定 sid cookie；email 不存在與密碼錯誤回傳相同訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, opts Options) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 型別不符與欄位缺漏都不透露細節
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid credentials"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid credentials"})
		}

		user, err := service.AuthenticateUser(c.Request().Context(), db, req.Email, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid credentials"})
		}
		if err != nil {
			middleware.Logger(c).Error().Err(err).Msg("login")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}

		if err := startSession(c, opts, user); err != nil {
			middleware.Logger(c).Error().Err(err).Msg("login: create session")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}
		return c.JSON(http.StatusOK, authResponse("Logged in", user))
	}
}
