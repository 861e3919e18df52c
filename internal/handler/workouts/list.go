// File: internal/handler/workouts/list.go
package workouts

import (
	"net/http"

	"fitlife/internal/authz"
	"fitlife/internal/database"
	"fitlife/internal/middleware"
	"fitlife/internal/repository"

	"github.com/labstack/echo/v4"
)

// ListHandler 分頁列出 workout，一般使用者只看得到自己的
// @Summary     列出 workouts
// @Tags        workouts
// @Produce     json
// @Param       page  query    int    false "頁碼 (預設 1)"
// @Param       limit query    int    false "每頁筆數 1-50 (預設 10)"
// @Param       type  query    string false "依類型篩選"
// @Success     200   {object} repository.WorkoutPage
// @Failure     401   {object} dto.HTTPError
// @Failure     500   {object} dto.HTTPError
// @Router      /workouts [get]
func ListHandler(db database.DB, az *authz.Authorizer) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ok, err := authorize(c, az, authz.List, ""); !ok {
			return err
		}
		scope := authz.Scope(middleware.CurrentIdentity(c))
		filter := repository.WorkoutFilter{
			Type:    c.QueryParam("type"),
			OwnerID: scope.OwnerID,
		}
		p := repository.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

		page, err := repository.ListWorkouts(c.Request().Context(), db, filter, p)
		if err != nil {
			return serverError(c, err, "list")
		}
		return c.JSON(http.StatusOK, page)
	}
}
