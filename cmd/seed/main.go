// File: cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"os"

	"fitlife/internal/config"
	"fitlife/internal/database"
	"fitlife/internal/logger"

	"github.com/rs/zerolog/log"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	exitFunc        = os.Exit
	cmdArgs         = os.Args[1:]
)

type options struct {
	// reset 先退回所有 migration，資料表會被清空後重建
	reset bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.BoolVar(&o.reset, "reset", false, "drop all tables before seeding")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	if opts.reset {
		if err := rollbackFn(cfg.DatabaseURL); err != nil {
			return err
		}
		log.Warn().Msg("all migrations rolled back")
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := seed(ctx, db, cfg.Seed, cfg.WorkerCount); err != nil {
		return err
	}
	log.Info().
		Str("admin", cfg.Seed.AdminEmail).
		Str("user", cfg.Seed.UserEmail).
		Msg("seed done")
	return nil
}

func main() {
	opts, err := parseFlags(cmdArgs)
	if err != nil {
		exitFunc(2)
		return
	}
	if err := run(context.Background(), opts); err != nil {
		log.Error().Err(err).Msg("seed failed")
		exitFunc(1)
	}
}
