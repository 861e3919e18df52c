// File: internal/model/workout.go
package model

import "time"

// WorkoutFields 是可由擁有者修改的欄位，建立與更新共用
type WorkoutFields struct {
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Type      string  `json:"type"`
	Intensity string  `json:"intensity"`
	Calories  float64 `json:"calories"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
	Status    string  `json:"status"`
}

type Workout struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"userId"`
	WorkoutFields
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}
