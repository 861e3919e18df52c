// File: internal/handler/workouts/get.go
package workouts

import (
	"errors"
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/database"
	"fitlife/internal/middleware"
	"fitlife/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得單筆 workout；不屬於自己的與不存在的同樣回 404
// @Summary     取得 workout
// @Tags        workouts
// @Produce     json
// @Param       id  path     string true "Workout ID"
// @Success     200 {object} model.Workout
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /workouts/{id} [get]
func GetHandler(db database.DB, az *authz.Authorizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if ok, err := authorize(c, az, authz.Read, id); !ok {
			return err
		}
		w, err := repository.GetWorkout(c.Request().Context(), db, id, authz.Scope(middleware.CurrentIdentity(c)))
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return serverError(c, err, "get")
		}
		return c.JSON(http.StatusOK, w)
	}
}
