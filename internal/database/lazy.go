// File: internal/database/lazy.go
package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Opener 建立實際連線池，正式環境為 NewPgxPool
type Opener func(ctx context.Context, url string) (DB, error)

// LazyDB 在第一次查詢時才建立連線池，成功之後整個程序共用同一個池且不再重建。
// 第一次建立失敗時不保留錯誤，之後的請求會再嘗試。
type LazyDB struct {
	url  string
	open Opener

	mu      sync.Mutex
	current atomic.Pointer[lazyConn]
}

type lazyConn struct{ db DB }

func NewLazyDB(url string, open Opener) *LazyDB {
	return &LazyDB{url: url, open: open}
}

func (l *LazyDB) conn(ctx context.Context) (DB, error) {
	if c := l.current.Load(); c != nil {
		return c.db, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if c := l.current.Load(); c != nil {
		return c.db, nil
	}
	db, err := l.open(ctx, l.url)
	if err != nil {
		return nil, fmt.Errorf("LazyDB: %w", err)
	}
	l.current.Store(&lazyConn{db: db})
	return db, nil
}

func (l *LazyDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db, err := l.conn(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return db.Exec(ctx, sql, args...)
}

func (l *LazyDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db, err := l.conn(ctx)
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, sql, args...)
}

func (l *LazyDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db, err := l.conn(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return db.QueryRow(ctx, sql, args...)
}

func (l *LazyDB) Ping(ctx context.Context) error {
	db, err := l.conn(ctx)
	if err != nil {
		return err
	}
	return db.Ping(ctx)
}

// Close 只關閉已建立的連線池
func (l *LazyDB) Close() {
	if c := l.current.Load(); c != nil {
		c.db.Close()
	}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
