package router

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"fitlife/internal/database"
	"fitlife/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// valuesRow 依 dest 型別依序填入 vals
type valuesRow struct {
	vals []any
	err  error
}

func (r valuesRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.vals[i].(string)
		case *float64:
			*p = r.vals[i].(float64)
		case *int:
			*p = r.vals[i].(int)
		case *time.Time:
			*p = r.vals[i].(time.Time)
		case **time.Time:
			*p = r.vals[i].(*time.Time)
		}
	}
	return nil
}

type memRows struct {
	rows []valuesRow
	idx  int
}

func (r *memRows) Close()                                       {}
func (r *memRows) Err() error                                   { return nil }
func (r *memRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *memRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *memRows) Next() bool                                   { return r.idx < len(r.rows) }
func (r *memRows) Scan(dest ...any) error {
	row := r.rows[r.idx]
	r.idx++
	return row.Scan(dest...)
}
func (r *memRows) Values() ([]any, error) { return nil, nil }
func (r *memRows) RawValues() [][]byte    { return nil }
func (r *memRows) Conn() *pgx.Conn        { return nil }

// memDB 以 SQL 開頭判斷 repository 的查詢，資料存在記憶體
type memDB struct {
	mu       sync.Mutex
	users    map[string]model.User
	workouts map[string]model.Workout
	clock    time.Time
}

func newMemDB() *memDB {
	return &memDB{
		users:    map[string]model.User{},
		workouts: map[string]model.Workout{},
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memDB) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func workoutVals(w model.Workout) []any {
	return []any{w.ID, w.UserID, w.Name, w.Duration, w.Type, w.Intensity, w.Calories,
		w.Date, w.Notes, w.Status, w.CreatedAt, w.UpdatedAt}
}

func fieldsFrom(args []any) model.WorkoutFields {
	return model.WorkoutFields{
		Name: args[0].(string), Duration: args[1].(float64), Type: args[2].(string),
		Intensity: args[3].(string), Calories: args[4].(float64), Date: args[5].(string),
		Notes: args[6].(string), Status: args[7].(string),
	}
}

// filtered 依 WHERE 條件篩選並以 created_at DESC, id DESC 排序
func (m *memDB) filtered(sql string, args []any) []model.Workout {
	i := 0
	var owner, typ string
	if strings.Contains(sql, "user_id = $") {
		owner = args[i].(string)
		i++
	}
	if strings.Contains(sql, "type = $") {
		typ = args[i].(string)
	}
	var out []model.Workout
	for _, w := range m.workouts {
		if owner != "" && w.UserID != owner {
			continue
		}
		if typ != "" && w.Type != typ {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID > out[b].ID
	})
	return out
}

func (m *memDB) addUser(name, email, hash string, role model.Role) model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := model.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash, Role: role, CreatedAt: m.tick()}
	m.users[u.ID] = u
	return u
}

func (m *memDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	sql = strings.TrimSpace(sql)

	switch {
	case strings.HasPrefix(sql, "INSERT INTO users"):
		email := args[1].(string)
		for _, u := range m.users {
			if u.Email == email {
				return valuesRow{err: &pgconn.PgError{Code: "23505"}}
			}
		}
		u := model.User{ID: uuid.NewString(), Name: args[0].(string), Email: email,
			PasswordHash: args[2].(string), Role: model.Role(args[3].(string)), CreatedAt: m.tick()}
		m.users[u.ID] = u
		return valuesRow{vals: []any{u.ID, u.CreatedAt}}

	case strings.HasPrefix(sql, "SELECT id::text, name, email"):
		for _, u := range m.users {
			if u.Email == args[0].(string) {
				return valuesRow{vals: []any{u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt}}
			}
		}
		return valuesRow{err: pgx.ErrNoRows}

	case strings.HasPrefix(sql, "SELECT count(*) FROM workouts"):
		return valuesRow{vals: []any{len(m.filtered(sql, args))}}

	case strings.HasPrefix(sql, "SELECT user_id::text FROM workouts"):
		w, ok := m.workouts[args[0].(string)]
		if !ok {
			return valuesRow{err: pgx.ErrNoRows}
		}
		return valuesRow{vals: []any{w.UserID}}

	case strings.HasPrefix(sql, "SELECT id::text, user_id::text"):
		w, ok := m.workouts[args[0].(string)]
		if !ok || (len(args) > 1 && w.UserID != args[1].(string)) {
			return valuesRow{err: pgx.ErrNoRows}
		}
		return valuesRow{vals: workoutVals(w)}

	case strings.HasPrefix(sql, "INSERT INTO workouts"):
		w := model.Workout{ID: uuid.NewString(), UserID: args[0].(string), WorkoutFields: fieldsFrom(args[1:]), CreatedAt: m.tick()}
		m.workouts[w.ID] = w
		return valuesRow{vals: workoutVals(w)}

	case strings.HasPrefix(sql, "UPDATE workouts"):
		w, ok := m.workouts[args[0].(string)]
		if !ok {
			return valuesRow{err: pgx.ErrNoRows}
		}
		now := m.tick()
		w.WorkoutFields = fieldsFrom(args[1:])
		w.UpdatedAt = &now
		m.workouts[w.ID] = w
		return valuesRow{vals: workoutVals(w)}
	}
	return valuesRow{err: errors.New("memDB: unexpected QueryRow " + sql)}
}

func (m *memDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(args)
	limit, offset := args[n-2].(int), args[n-1].(int)
	items := m.filtered(sql, args[:n-2])
	rows := &memRows{}
	for i := offset; i < len(items) && i < offset+limit; i++ {
		rows.rows = append(rows.rows, valuesRow{vals: workoutVals(items[i])})
	}
	return rows, nil
}

func (m *memDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !strings.HasPrefix(strings.TrimSpace(sql), "DELETE FROM workouts") {
		return pgconn.CommandTag{}, errors.New("memDB: unexpected Exec " + sql)
	}
	id := args[0].(string)
	if _, ok := m.workouts[id]; !ok {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}
	delete(m.workouts, id)
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (m *memDB) Ping(context.Context) error { return nil }
func (m *memDB) Close()                     {}

var _ database.DB = (*memDB)(nil)
