// Package web 內嵌前端頁面與靜態資源
package web

import "embed"

//go:embed *.html static
var FS embed.FS
