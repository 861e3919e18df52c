// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 銷毀 session 並清除 cookie，沒有 session 也回 200
// @Summary     登出
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler(opts Options) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tok := middleware.SessionToken(c); tok != "" {
			if err := opts.Store.Destroy(c.Request().Context(), tok); err != nil {
				middleware.Logger(c).Warn().Err(err).Msg("logout: destroy session")
			}
		}
		c.SetCookie(session.ClearCookie(opts.Secure))
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
	}
}

// MeHandler 回報目前的登入狀態
// @Summary     目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MeResponse
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id := middleware.CurrentIdentity(c)
		if id.Anonymous() {
			return c.JSON(http.StatusOK, dto.MeResponse{Authenticated: false})
		}
		return c.JSON(http.StatusOK, dto.MeResponse{
			Authenticated: true,
			Email:         id.Email,
			Role:          string(id.Role),
			Name:          id.Name,
		})
	}
}
