package middleware

import (
	"errors"
	"net/http"

	"fitlife/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ContextIdentityKey = "identity"
	ContextTokenKey    = "sessionToken"
)

// Session 由 sid cookie 解析身分並放入 context，沒有有效 session 時視為匿名
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			id, err := store.Get(c.Request().Context(), cookie.Value)
			if errors.Is(err, session.ErrNoSession) {
				return next(c)
			}
			if err != nil {
				Logger(c).Error().Err(err).Msg("session lookup failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
			}
			c.Set(ContextIdentityKey, id)
			c.Set(ContextTokenKey, cookie.Value)
			return next(c)
		}
	}
}

// CurrentIdentity 回傳呼叫者身分，零值代表匿名
func CurrentIdentity(c echo.Context) session.Identity {
	id, _ := c.Get(ContextIdentityKey).(session.Identity)
	return id
}

// SessionToken 回傳目前請求有效的 session token
func SessionToken(c echo.Context) string {
	tok, _ := c.Get(ContextTokenKey).(string)
	return tok
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentIdentity(c).Anonymous() {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return next(c)
	}
}

// Logger 回傳帶 request id 的 zerolog logger
func Logger(c echo.Context) *zerolog.Logger {
	l := log.With().Str("request_id", requestID(c)).Logger()
	return &l
}
