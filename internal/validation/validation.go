// Package validation 檢查 workout 與註冊/登入的輸入，只依賴 go-playground/validator
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validator 回傳共用的 validator，echo 的 CustomValidator 也使用同一個實例
func Validator() *validator.Validate { return validate }

// Error 描述第一個未通過的欄位
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// FirstFieldError 把 validator 的錯誤轉為第一個失敗欄位對應的訊息。
// validator 依 struct 欄位宣告順序回報錯誤，所以欄位順序就是檢查順序。
func FirstFieldError(err error, messages map[string]string, fallback string) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0].Field()
		if msg, ok := messages[f]; ok {
			return &Error{Field: f, Message: msg}
		}
		return &Error{Field: f, Message: fallback}
	}
	return &Error{Message: fallback}
}
