package router

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/web"

	"github.com/labstack/echo/v4"
)

// ErrorHandler 把 echo 的錯誤統一成 {"error": "..."}。
// /api 以外的 404 回傳 404 頁面。
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok && code < 500 {
				msg = m
			}
		}

		isAPI := c.Path() == "/api/*" || strings.HasPrefix(c.Request().URL.Path, "/api/") || c.Request().URL.Path == "/api"
		var werr error
		switch {
		case (code == http.StatusNotFound || code == http.StatusMethodNotAllowed) && isAPI:
			werr = c.JSON(http.StatusNotFound, dto.HTTPError{Error: "API endpoint not found"})
		case code == http.StatusNotFound:
			werr = notFoundPage(c)
		default:
			if code >= 500 {
				middleware.Logger(c).Error().Err(err).Msg("unhandled error")
			}
			if c.Request().Method == http.MethodHead {
				werr = c.NoContent(code)
			} else {
				werr = c.JSON(code, dto.HTTPError{Error: msg})
			}
		}
		if werr != nil {
			e.Logger.Error(werr)
		}
	}
}

func notFoundPage(c echo.Context) error {
	page, err := fs.ReadFile(web.FS, "404.html")
	if err != nil {
		return c.String(http.StatusNotFound, "Not found")
	}
	return c.HTMLBlob(http.StatusNotFound, page)
}
