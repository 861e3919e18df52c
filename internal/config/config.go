// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 服務與 seed 指令共用的設定
type Config struct {
	Env      string
	HTTPAddr string
	LogLevel string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration

	WorkerCount int
	Seed        SeedConfig
}

// SeedConfig 預設帳號，僅 cmd/seed 使用
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	UserEmail     string
	UserPassword  string
}

// IsProduction 決定 cookie 是否帶 Secure 以及 echo 是否關閉 debug
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// envFile 可選的 .env 路徑，空字串表示只讀環境變數
var envFile = ".env"

// newViper 讀取 envFile (不存在時略過) 並以環境變數覆寫
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	if envFile == "" {
		return v, nil
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("讀取 %s 失敗: %w", envFile, err)
	}
	return v, nil
}

// Load 讀取並驗證設定
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	setDefaults(v)

	cfg := &Config{
		Env:           v.GetString("APP_ENV"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
			UserEmail:     v.GetString("SEED_USER_EMAIL"),
			UserPassword:  v.GetString("SEED_USER_PASSWORD"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, errors.New("環境變數 REDIS_ADDR 未設定")
	}

	// viper 的 GetInt 會把非法值吞成 0，這裡自行解析
	redisDB, err := strconv.Atoi(strings.TrimSpace(v.GetString("REDIS_DB")))
	if err != nil || redisDB < 0 {
		return nil, fmt.Errorf("無效的 REDIS_DB: %q", v.GetString("REDIS_DB"))
	}
	cfg.RedisDB = redisDB

	ttl, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("無效的 SESSION_TTL: %q", v.GetString("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	workers, err := strconv.Atoi(strings.TrimSpace(v.GetString("WORKER_COUNT")))
	if err != nil || workers <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %q", v.GetString("WORKER_COUNT"))
	}
	cfg.WorkerCount = workers

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_DB", "0")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("WORKER_COUNT", "4")

	v.SetDefault("SEED_ADMIN_EMAIL", "admin@fitlife.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	v.SetDefault("SEED_USER_EMAIL", "user@fitlife.com")
	v.SetDefault("SEED_USER_PASSWORD", "user123")
}
