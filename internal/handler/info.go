// File: internal/handler/info.go
package handler

import (
	"net/http"
	"time"

	"fitlife/internal/dto"

	"github.com/labstack/echo/v4"
)

const ProjectName = "FitLife Tracker"

var timeNow = time.Now

// InfoHandler 回傳專案名稱、版本與伺服器時間
// @Summary     專案資訊
// @Tags        info
// @Produce     json
// @Success     200 {object} dto.InfoResponse
// @Router      /info [get]
func InfoHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.InfoResponse{
			Project: ProjectName,
			Version: version,
			Time:    timeNow().UTC().Format(time.RFC3339Nano),
		})
	}
}
