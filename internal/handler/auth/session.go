// File: internal/handler/auth/session.go
package auth

import (
	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/internal/model"
	"fitlife/internal/session"

	"github.com/labstack/echo/v4"
)

// Options 認證 handler 共用設定
type Options struct {
	Store  *session.Store
	Secure bool
}

// startSession 銷毀請求原有的 session，再為 u 建立新的並寫入 cookie
func startSession(c echo.Context, opts Options, u *model.User) error {
	ctx := c.Request().Context()
	if old := middleware.SessionToken(c); old != "" {
		if err := opts.Store.Destroy(ctx, old); err != nil {
			middleware.Logger(c).Warn().Err(err).Msg("destroy previous session")
		}
	}
	token, err := opts.Store.Create(ctx, session.IdentityOf(u))
	if err != nil {
		return err
	}
	c.SetCookie(session.NewCookie(token, opts.Store.TTL(), opts.Secure))
	return nil
}

func authResponse(msg string, u *model.User) dto.AuthResponse {
	return dto.AuthResponse{
		Message: msg,
		Email:   u.Email,
		Role:    string(u.Role),
		Name:    u.Name,
	}
}
