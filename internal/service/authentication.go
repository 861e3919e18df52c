// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"

	"fitlife/internal/database"
	"fitlife/internal/model"
	"fitlife/internal/repository"
)

// ErrInvalidCredentials email 不存在或密碼錯誤，兩者不區分
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser 以 email 與明文密碼驗證，成功回傳使用者
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := repository.GetUserByEmail(ctx, db, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("AuthenticateUser: %w", err)
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RegisterUser 雜湊密碼後建立一般使用者，email 重複時回傳 repository.ErrEmailTaken
func RegisterUser(ctx context.Context, db database.DB, name, email, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}
	user, err := repository.CreateUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}
	return user, nil
}
