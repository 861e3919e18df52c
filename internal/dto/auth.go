// File: internal/dto/auth.go
package dto

type RegisterRequest struct {
	Name     string `json:"name" example:"Ann"`
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"secret1"`
}

// LoginRequest 兩個欄位皆必填，驗證失敗一律回 Invalid credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required" example:"ann@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"secret1"`
}

// AuthResponse 註冊與登入成功回應
type AuthResponse struct {
	Message string `json:"message" example:"Logged in"`
	Email   string `json:"email" example:"ann@example.com"`
	Role    string `json:"role" example:"user"`
	Name    string `json:"name" example:"Ann"`
}

// MeResponse 匿名時只有 authenticated=false
type MeResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
	Name          string `json:"name,omitempty"`
}
