package repository

import (
	"time"

	"fitlife/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

func fillWorkout(w model.Workout, dest []any) {
	*dest[0].(*string) = w.ID
	*dest[1].(*string) = w.UserID
	*dest[2].(*string) = w.Name
	*dest[3].(*float64) = w.Duration
	*dest[4].(*string) = w.Type
	*dest[5].(*string) = w.Intensity
	*dest[6].(*float64) = w.Calories
	*dest[7].(*string) = w.Date
	*dest[8].(*string) = w.Notes
	*dest[9].(*string) = w.Status
	*dest[10].(*time.Time) = w.CreatedAt
	*dest[11].(**time.Time) = w.UpdatedAt
}

// fakeRow 依 dest 數量決定填入的內容：
// 12 → workout，6 → user，2 → (id, created_at)，1 → count 或 owner
type fakeRow struct {
	err     error
	workout model.Workout
	user    model.User
	role    string
	count   int
	owner   string
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch len(dest) {
	case 12:
		fillWorkout(r.workout, dest)
	case 6:
		*dest[0].(*string) = r.user.ID
		*dest[1].(*string) = r.user.Name
		*dest[2].(*string) = r.user.Email
		*dest[3].(*string) = r.user.PasswordHash
		*dest[4].(*string) = r.role
		*dest[5].(*time.Time) = r.user.CreatedAt
	case 2:
		*dest[0].(*string) = r.user.ID
		*dest[1].(*time.Time) = r.user.CreatedAt
	case 1:
		switch d := dest[0].(type) {
		case *int:
			*d = r.count
		case *string:
			*d = r.owner
		}
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    []model.Workout
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillWorkout(r.data[r.idx], dest)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
