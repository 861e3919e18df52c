// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitlife/internal/database"
	"fitlife/internal/model"

	"github.com/jackc/pgx/v5"
)

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = model.ParseRole(role)
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id::text, name, email, password_hash, role, created_at
		 FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者，email 重複時回傳 ErrEmailTaken
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	u.Role = model.ParseRole(string(u.Role))
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrEmailTaken)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpsertUser 以 email 為鍵新增或覆寫名稱、密碼與角色，供 seed 使用
func UpsertUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	u.Role = model.ParseRole(string(u.Role))
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		 RETURNING id::text, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("UpsertUser: %w", err)
	}
	return u, nil
}
