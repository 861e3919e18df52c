// File: internal/repository/workout.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitlife/internal/database"
	"fitlife/internal/model"

	"github.com/jackc/pgx/v5"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
	// MaxPage 讓 OFFSET 保持在 int32 範圍內
	MaxPage = math.MaxInt32 / MaxLimit
)

const workoutColumns = `id::text, user_id::text, name, duration, type, intensity, calories,
	to_char(date, 'YYYY-MM-DD'), notes, status, created_at, updated_at`

// Scope 限制查詢範圍，OwnerID 為空代表不限制（管理員）
type Scope struct {
	OwnerID string
}

type WorkoutFilter struct {
	Type    string
	OwnerID string
}

type Pagination struct {
	Page  int
	Limit int
}

// NewPagination 將 page 夾在 [1, MaxPage]，limit 夾在 [1, MaxLimit]
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination 解析 query string，空值或無法解析的值使用預設值
func ParsePagination(page, limit string) Pagination {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil {
		p = DefaultPage
	}
	l, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil {
		l = DefaultLimit
	}
	return NewPagination(p, l)
}

func (p Pagination) Offset() int { return (p.Page - 1) * p.Limit }

type WorkoutPage struct {
	Items []model.Workout `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
	Pages int             `json:"pages"`
}

// TotalPages = ceil(total/limit)，最少 1 頁
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

func scanWorkout(row pgx.Row) (*model.Workout, error) {
	w := &model.Workout{}
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Name,
		&w.Duration,
		&w.Type,
		&w.Intensity,
		&w.Calories,
		&w.Date,
		&w.Notes,
		&w.Status,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return w, nil
}

func buildWhere(f WorkoutFilter) (string, []any) {
	var conds []string
	var args []any
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		conds = append(conds, fmt.Sprintf("user_id = $%d::uuid", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListWorkouts 依 created_at 由新到舊分頁列出
func ListWorkouts(ctx context.Context, db database.DB, f WorkoutFilter, p Pagination) (*WorkoutPage, error) {
	if f.OwnerID != "" && !ValidID(f.OwnerID) {
		return nil, fmt.Errorf("ListWorkouts: %w", ErrInvalidID)
	}
	p = NewPagination(p.Page, p.Limit)
	where, args := buildWhere(f)

	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM workouts`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("ListWorkouts: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM workouts%s
		 ORDER BY created_at DESC, id DESC
		 LIMIT $%d OFFSET $%d`, workoutColumns, where, len(args)-1, len(args))
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWorkouts: %w", err)
	}
	defer rows.Close()

	items := make([]model.Workout, 0, p.Limit)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("ListWorkouts: %w", err)
		}
		items = append(items, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWorkouts: %w", err)
	}

	return &WorkoutPage{
		Items: items,
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: TotalPages(total, p.Limit),
	}, nil
}

func GetWorkout(ctx context.Context, db database.DB, id string, scope Scope) (*model.Workout, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("GetWorkout: %w", ErrInvalidID)
	}
	sql := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1::uuid`
	args := []any{id}
	if scope.OwnerID != "" {
		sql += ` AND user_id = $2::uuid`
		args = append(args, scope.OwnerID)
	}
	w, err := scanWorkout(db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetWorkout: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetWorkout: %w", err)
	}
	return w, nil
}

func CreateWorkout(ctx context.Context, db database.DB, ownerID string, f model.WorkoutFields) (*model.Workout, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO workouts (user_id, name, duration, type, intensity, calories, date, notes, status)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7::date, $8, $9)
		 RETURNING `+workoutColumns,
		ownerID, f.Name, f.Duration, f.Type, f.Intensity, f.Calories, f.Date, f.Notes, f.Status,
	)
	w, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("CreateWorkout: %w", err)
	}
	return w, nil
}

// UpdateWorkout 整筆取代可修改欄位，後寫入者覆蓋
func UpdateWorkout(ctx context.Context, db database.DB, id string, f model.WorkoutFields) (*model.Workout, error) {
	if !ValidID(id) {
		return nil, fmt.Errorf("UpdateWorkout: %w", ErrInvalidID)
	}
	row := db.QueryRow(ctx,
		`UPDATE workouts
		 SET name = $2, duration = $3, type = $4, intensity = $5, calories = $6,
		     date = $7::date, notes = $8, status = $9, updated_at = now()
		 WHERE id = $1::uuid
		 RETURNING `+workoutColumns,
		id, f.Name, f.Duration, f.Type, f.Intensity, f.Calories, f.Date, f.Notes, f.Status,
	)
	w, err := scanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("UpdateWorkout: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateWorkout: %w", err)
	}
	return w, nil
}

func DeleteWorkout(ctx context.Context, db database.DB, id string) error {
	if !ValidID(id) {
		return fmt.Errorf("DeleteWorkout: %w", ErrInvalidID)
	}
	tag, err := db.Exec(ctx, `DELETE FROM workouts WHERE id = $1::uuid`, id)
	if err != nil {
		return fmt.Errorf("DeleteWorkout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteWorkout: %w", ErrNotFound)
	}
	return nil
}

// GetWorkoutOwner 回傳擁有者 id，供授權判斷
func GetWorkoutOwner(ctx context.Context, db database.DB, id string) (string, error) {
	if !ValidID(id) {
		return "", fmt.Errorf("GetWorkoutOwner: %w", ErrInvalidID)
	}
	var owner string
	err := db.QueryRow(ctx, `SELECT user_id::text FROM workouts WHERE id = $1::uuid`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("GetWorkoutOwner: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("GetWorkoutOwner: %w", err)
	}
	return owner, nil
}

func CountWorkouts(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM workouts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountWorkouts: %w", err)
	}
	return n, nil
}
