// File: internal/router/router.go
package router

import (
	"context"
	"time"

	"fitlife/internal/authz"
	"fitlife/internal/cache"
	"fitlife/internal/database"
	"fitlife/internal/handler"
	"fitlife/internal/handler/auth"
	"fitlife/internal/handler/workouts"
	"fitlife/internal/middleware"
	"fitlife/internal/repository"
	"fitlife/internal/session"
	"fitlife/web"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Config 路由需要的執行期設定
type Config struct {
	SessionTTL time.Duration
	Secure     bool
	Version    string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, cfg Config) {
	store := session.NewStore(cch, cfg.SessionTTL)
	az := authz.New(func(ctx context.Context, id string) (string, error) {
		return repository.GetWorkoutOwner(ctx, db, id)
	})
	opts := auth.Options{Store: store, Secure: cfg.Secure}

	e.HTTPErrorHandler = ErrorHandler(e)

	api := e.Group("/api", middleware.Session(store))

	api.GET("/ping", handler.PingHandler(db, cch))
	api.GET("/info", handler.InfoHandler(cfg.Version))

	// 認證
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db, opts))
	apiAuth.POST("/login", auth.LoginHandler(db, opts))
	apiAuth.POST("/logout", auth.LogoutHandler(opts))
	apiAuth.GET("/me", auth.MeHandler())

	// Workouts：擁有權與角色判斷都在 authz。
	// RequireAuth 逐一掛在路由上，未知的 /workouts 子路徑仍回 API 404
	apiWorkouts := api.Group("/workouts")
	apiWorkouts.GET("", workouts.ListHandler(db, az), middleware.RequireAuth)
	apiWorkouts.POST("", workouts.CreateHandler(db, az), middleware.RequireAuth)
	apiWorkouts.GET("/:id", workouts.GetHandler(db, az), middleware.RequireAuth)
	apiWorkouts.PUT("/:id", workouts.UpdateHandler(db, az), middleware.RequireAuth)
	apiWorkouts.DELETE("/:id", workouts.DeleteHandler(db, az), middleware.RequireAuth)

	// 頁面與靜態資源
	e.FileFS("/", "index.html", web.FS)
	e.FileFS("/about", "about.html", web.FS)
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
