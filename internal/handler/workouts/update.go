// File: internal/handler/workouts/update.go
package workouts

import (
	"errors"
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/database"
	"fitlife/internal/repository"

	"github.com/labstack/echo/v4"
)

// UpdateHandler 整筆取代 workout 欄位，僅擁有者或管理員可執行。
// 授權在驗證 payload 之前，非擁有者不論 payload 為何都收到 403。
// @Summary     更新 workout
// @Tags        workouts
// @Accept      json
// @Produce     json
// @Param       id   path     string             true "Workout ID"
// @Param       body body     dto.WorkoutRequest true "Workout 欄位"
// @Success     200  {object} model.Workout
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /workouts/{id} [put]
func UpdateHandler(db database.DB, az *authz.Authorizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if ok, err := authorize(c, az, authz.Update, id); !ok {
			return err
		}
		f, ok, err := parseFields(c)
		if !ok {
			return err
		}
		w, err := repository.UpdateWorkout(c.Request().Context(), db, id, f)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return serverError(c, err, "update")
		}
		return c.JSON(http.StatusOK, w)
	}
}
