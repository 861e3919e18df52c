package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitlife/internal/cache"
	"fitlife/internal/database"
	"fitlife/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("fail") }}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"Server error"}`, rec.Body.String())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		db := &database.FakeDB{PingFn: func(context.Context) error { dbCalled = true; return nil }}
		cch := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("refused"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, cch)(e.NewContext(req, rec)))
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})
}

func TestInfoHandler(t *testing.T) {
	fixed := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, InfoHandler("1.2.3")(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.InfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, dto.InfoResponse{Project: "FitLife Tracker", Version: "1.2.3", Time: "2026-01-15T08:00:00Z"}, got)
}
