// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"fitlife/internal/cache"
	"fitlife/internal/database"
	"fitlife/internal/dto"
	"fitlife/internal/middleware"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 session 後端連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			middleware.Logger(c).Error().Err(err).Msg("database unhealthy")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			middleware.Logger(c).Error().Err(err).Msg("session store unhealthy")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
		}
		return c.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
