// File: internal/model/user.go
package model

import "time"

// Role 使用者角色，只允許 RoleUser 與 RoleAdmin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole 將資料庫或 session 內的字串轉為 Role，未知值一律視為 RoleUser
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
