// File: internal/validation/auth.go
package validation

import "strings"

// RegisterInput 註冊欄位，宣告順序即檢查順序
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Invalid email",
	"Password": "Password must be at least 6 characters",
}

// Registration 檢查註冊資料；姓名先去除前後空白再檢查
func Registration(name, email, password string) error {
	in := RegisterInput{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: password,
	}
	if err := validate.Struct(&in); err != nil {
		return FirstFieldError(err, registerMessages, "Invalid request body")
	}
	return nil
}

// NormalizeEmail 轉小寫並去除空白，email 一律以此形式儲存與查詢
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
