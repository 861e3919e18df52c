// File: cmd/service/main.go
// @title        FitLife Tracker API
// @version      1.0
// @description  FitLife Tracker 的後端 API 文件，認證使用 sid session cookie
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"github.com/rs/zerolog/log"

	_ "fitlife/docs" // 引入 swag 產出的 docs
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
