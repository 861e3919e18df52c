// File: internal/dto/workout.go
package dto

// WorkoutRequest 建立或更新 workout 的欄位，僅供文件使用，實際以 map 解析以便逐欄檢查
type WorkoutRequest struct {
	Name      string  `json:"name" example:"Morning run"`
	Duration  float64 `json:"duration" example:"30"`
	Type      string  `json:"type" example:"cardio"`
	Intensity string  `json:"intensity" example:"medium"`
	Calories  float64 `json:"calories" example:"250"`
	Date      string  `json:"date" example:"2026-01-15"`
	Notes     string  `json:"notes,omitempty" example:""`
	Status    string  `json:"status" example:"completed"`
}
