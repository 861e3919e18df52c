// Package workouts 提供 workout CRUD handler，所有存取都先經過 authz.Authorizer。
package workouts

import (
	"errors"
	"io"
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/dto"
	"fitlife/internal/middleware"
	"fitlife/internal/model"
	"fitlife/internal/validation"

	"github.com/labstack/echo/v4"
)

// authorize 回傳 false 時回應已寫出
func authorize(c echo.Context, az *authz.Authorizer, action authz.Action, workoutID string) (bool, error) {
	d, err := az.Authorize(c.Request().Context(), middleware.CurrentIdentity(c), action, workoutID)
	if err != nil {
		return false, serverError(c, err, "authorize "+action.String())
	}
	if d.Allowed {
		return true, nil
	}
	return false, denied(c, d.Reason)
}

func denied(c echo.Context, r authz.Reason) error {
	switch r {
	case authz.Unauthorized:
		return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Unauthorized"})
	case authz.BadRequest:
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid id"})
	case authz.NotFound:
		return notFound(c)
	}
	return c.JSON(http.StatusForbidden, dto.HTTPError{Error: "Forbidden"})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Not found"})
}

func serverError(c echo.Context, err error, op string) error {
	middleware.Logger(c).Error().Err(err).Str("op", op).Msg("workout request failed")
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Server error"})
}

// parseFields 把 body 解成 map 交給 validation 逐欄檢查，回傳 false 時 400 已寫出。
// 空 body 與 null 視為空物件。
func parseFields(c echo.Context) (model.WorkoutFields, bool, error) {
	var payload map[string]any
	err := c.Echo().JSONSerializer.Deserialize(c, &payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return model.WorkoutFields{}, false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body"})
	}
	if payload == nil {
		payload = map[string]any{}
	}
	f, err := validation.Workout(payload)
	if err != nil {
		return model.WorkoutFields{}, false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
	}
	return f, true, nil
}
