// File: internal/handler/workouts/create.go
package workouts

import (
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/database"
	"fitlife/internal/middleware"
	"fitlife/internal/repository"

	"github.com/labstack/echo/v4"
)

// CreateHandler 建立 workout，擁有者為目前使用者
// @Summary     建立 workout
// @Tags        workouts
// @Accept      json
// @Produce     json
// @Param       body body     dto.WorkoutRequest true "Workout 欄位"
// @Success     201  {object} model.Workout
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /workouts [post]
func CreateHandler(db database.DB, az *authz.Authorizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ok, err := authorize(c, az, authz.Create, ""); !ok {
			return err
		}
		f, ok, err := parseFields(c)
		if !ok {
			return err
		}
		owner := middleware.CurrentIdentity(c).UserID
		w, err := repository.CreateWorkout(c.Request().Context(), db, owner, f)
		if err != nil {
			return serverError(c, err, "create")
		}
		return c.JSON(http.StatusCreated, w)
	}
}
