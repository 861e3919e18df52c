// File: internal/dto/info.go
package dto

// InfoResponse 專案資訊
type InfoResponse struct {
	Project string `json:"project" example:"FitLife Tracker"`
	Version string `json:"version" example:"1.0.0"`
	Time    string `json:"time" example:"2026-01-15T08:00:00Z"`
}

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}
