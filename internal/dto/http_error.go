// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// error 錯誤描述
	Error string `json:"error" example:"Not found"`
}

// MessageResponse 只帶訊息的回應
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}
