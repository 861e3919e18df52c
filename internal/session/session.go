// File: internal/session/session.go
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitlife/internal/cache"
	"fitlife/internal/model"

	"github.com/redis/go-redis/v9"
)

// CookieName 存放 session token 的 cookie
const CookieName = "sid"

const keyPrefix = "session:"

// ErrNoSession token 不存在、已過期或內容損毀
var ErrNoSession = errors.New("session not found")

var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// Identity 是 session 綁定的呼叫者身分，零值代表匿名
type Identity struct {
	UserID string     `json:"userId"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	Name   string     `json:"name"`
}

func (i Identity) Anonymous() bool { return i.UserID == "" }

func (i Identity) IsAdmin() bool { return !i.Anonymous() && i.Role.IsAdmin() }

// IdentityOf 由使用者資料建立 session 身分
func IdentityOf(u *model.User) Identity {
	return Identity{UserID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
}

// Store 把 session 存在 cache 後端，過期由後端的 TTL 處理
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

func (s *Store) TTL() time.Duration { return s.ttl }

// Create 產生 32 bytes 隨機 token 並寫入身分
func (s *Store) Create(ctx context.Context, id Identity) (string, error) {
	if id.Anonymous() {
		return "", errors.New("Create: anonymous identity")
	}
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(id)
	if err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	if err := s.cache.Set(ctx, keyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	return token, nil
}

// Get 取得 token 對應的身分
func (s *Store) Get(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}
	val, err := s.cache.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return Identity{}, ErrNoSession
	}
	if err != nil {
		return Identity{}, fmt.Errorf("Get: %w", err)
	}
	var id Identity
	if err := jsonUnmarshal([]byte(val), &id); err != nil || id.Anonymous() {
		return Identity{}, ErrNoSession
	}
	id.Role = model.ParseRole(string(id.Role))
	return id, nil
}

// Destroy 刪除 session，不存在時不視為錯誤
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.cache.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("Destroy: %w", err)
	}
	return nil
}

// NewCookie 建立帶 token 的 session cookie
func NewCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie 要求瀏覽器丟棄 session cookie
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
