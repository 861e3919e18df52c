package main

import (
	"context"
	"fmt"

	"fitlife/internal/config"
	"fitlife/internal/database"
	"fitlife/internal/model"
	"fitlife/internal/repository"
	"fitlife/internal/service"
	"fitlife/internal/worker"

	"github.com/rs/zerolog/log"
)

// sampleCount 少於此數量時補上範例 workout
const sampleCount = 20

var samples = []model.WorkoutFields{
	{Name: "Morning Run", Type: "Cardio", Intensity: "Medium", Duration: 30, Calories: 250, Date: "2026-02-01", Notes: "Park route", Status: "done"},
	{Name: "Leg Day", Type: "Strength", Intensity: "High", Duration: 45, Calories: 400, Date: "2026-02-02", Notes: "Squats + lunges", Status: "done"},
	{Name: "Yoga Flow", Type: "Flexibility", Intensity: "Low", Duration: 25, Calories: 120, Date: "2026-02-03", Notes: "Stretching", Status: "done"},
	{Name: "Cycling", Type: "Cardio", Intensity: "Medium", Duration: 40, Calories: 350, Date: "2026-02-04", Notes: "City ride", Status: "planned"},
}

var newWorkerPool = worker.NewPool

func upsert(ctx context.Context, db database.DB, name, email, password string, role model.Role) (*model.User, error) {
	hash, err := service.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", email, err)
	}
	return repository.UpsertUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

// seed 建立管理員與一般使用者，資料不足時輪流指派擁有者插入範例 workout
func seed(ctx context.Context, db database.DB, cfg config.SeedConfig, workers int) error {
	admin, err := upsert(ctx, db, "Admin", cfg.AdminEmail, cfg.AdminPassword, model.RoleAdmin)
	if err != nil {
		return err
	}
	user, err := upsert(ctx, db, "User", cfg.UserEmail, cfg.UserPassword, model.RoleUser)
	if err != nil {
		return err
	}

	total, err := repository.CountWorkouts(ctx, db)
	if err != nil {
		return err
	}
	if total >= sampleCount {
		log.Info().Int("workouts", total).Msg("workouts already seeded")
		return nil
	}

	pool := newWorkerPool(ctx, workers)
	for i := 0; i < sampleCount; i++ {
		f := samples[i%len(samples)]
		f.Name = fmt.Sprintf("%s #%d", f.Name, i+1)
		owner := admin.ID
		if i%2 == 0 {
			owner = user.ID
		}
		pool.Submit(func(ctx context.Context) error {
			_, err := repository.CreateWorkout(ctx, db, owner, f)
			return err
		})
	}
	if err := pool.Wait(); err != nil {
		return fmt.Errorf("seed workouts: %w", err)
	}
	log.Info().Int("workouts", sampleCount).Msg("sample workouts inserted")
	return nil
}
