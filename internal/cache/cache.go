package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義 session 儲存需要的 key-value 操作
// *redis.Client 直接實作此介面，測試時以 FakeCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn   func(ctx context.Context, keys ...string) *redis.IntCmd
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Del 執行 Fake 設定或 panic
func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Ping 未設定時視為健康
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// NewMemoryCache 回傳以 map 實作、支援 TTL 的 FakeCache，供 handler 測試模擬 session 後端
func NewMemoryCache() *FakeCache {
	type entry struct {
		val     string
		expires time.Time
	}
	var mu sync.Mutex
	data := map[string]entry{}
	return &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			e, ok := data[key]
			if !ok || (!e.expires.IsZero() && time.Now().After(e.expires)) {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(e.val, nil)
		},
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			e := entry{}
			switch v := val.(type) {
			case []byte:
				e.val = string(v)
			case string:
				e.val = v
			default:
				return redis.NewStatusResult("", errUnsupportedValue)
			}
			if ttl > 0 {
				e.expires = time.Now().Add(ttl)
			}
			mu.Lock()
			data[key] = e
			mu.Unlock()
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}
}
