// File: internal/validation/workout.go
package validation

import (
	"math"
	"strconv"
	"strings"

	"fitlife/internal/model"
)

const dateLayout = "2006-01-02"

// Workout 依固定順序檢查 workout payload，第一個失敗的規則決定錯誤訊息。
// payload 是 JSON 解碼後的原始值：數字可為 JSON number 或數字字串。
func Workout(payload map[string]any) (model.WorkoutFields, error) {
	var f model.WorkoutFields
	var ok bool

	if f.Name, ok = nonEmptyString(payload["name"]); !ok {
		return f, invalid("name")
	}
	if f.Duration, ok = number(payload["duration"]); !ok || f.Duration <= 0 {
		return f, invalid("duration")
	}
	if f.Type, ok = nonEmptyString(payload["type"]); !ok {
		return f, invalid("type")
	}
	if f.Intensity, ok = nonEmptyString(payload["intensity"]); !ok {
		return f, invalid("intensity")
	}
	if f.Calories, ok = number(payload["calories"]); !ok || f.Calories < 0 {
		return f, invalid("calories")
	}
	if f.Date, ok = calendarDate(payload["date"]); !ok {
		return f, &Error{Field: "date", Message: "Invalid date (use YYYY-MM-DD)"}
	}
	if v, present := payload["notes"]; present && v != nil {
		if f.Notes, ok = v.(string); !ok {
			return f, invalid("notes")
		}
	}
	if f.Status, ok = nonEmptyString(payload["status"]); !ok {
		return f, invalid("status")
	}
	return f, nil
}

func invalid(field string) *Error {
	return &Error{Field: field, Message: "Invalid " + field}
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		// NaN 與 Inf 無法存成 JSON
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// calendarDate 以 validator 的 datetime 規則解析，time.Parse 會拒絕不存在的日期。
// PostgreSQL 的 date 沒有西元 0 年
func calendarDate(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || len(s) != len(dateLayout) || strings.HasPrefix(s, "0000") {
		return "", false
	}
	if err := validate.Var(s, "required,datetime="+dateLayout); err != nil {
		return "", false
	}
	return s, true
}
