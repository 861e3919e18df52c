// File: internal/handler/workouts/delete.go
package workouts

import (
	"errors"
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/database"
	"fitlife/internal/repository"

	"github.com/labstack/echo/v4"
)

// DeleteHandler 永久刪除 workout，僅擁有者或管理員可執行
// @Summary     刪除 workout
// @Tags        workouts
// @Param       id  path string true "Workout ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /workouts/{id} [delete]
func DeleteHandler(db database.DB, az *authz.Authorizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if ok, err := authorize(c, az, authz.Delete, id); !ok {
			return err
		}
		err := repository.DeleteWorkout(c.Request().Context(), db, id)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return serverError(c, err, "delete")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
