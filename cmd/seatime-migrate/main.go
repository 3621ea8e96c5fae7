package main

import (
	"context"
	"flag"

	"seatime/internal/platform/config"
	"seatime/internal/platform/logger"
	"seatime/internal/platform/migrate"
)

func main() {
	fCmd := flag.String("cmd", "up", "migration command: up | status | version")
	flag.Parse()

	lopts := logger.FromEnv()
	lopts.Service = "seatime-migrate"
	logger.Init(lopts)
	l := logger.Get()
	dsn := config.New().Prefix("SERVICE_PGSQL_").MustString("DBURL")
	ctx := context.Background()

	switch *fCmd {
	case "up":
		if err := migrate.Up(ctx, dsn); err != nil {
			l.Fatal().Err(err).Msg("migrate up failed")
		}
		l.Info().Msg("migrations applied")
	case "status":
		if err := migrate.Status(ctx, dsn); err != nil {
			l.Fatal().Err(err).Msg("migrate status failed")
		}
	case "version":
		v, err := migrate.Version(ctx, dsn)
		if err != nil {
			l.Fatal().Err(err).Msg("migrate version failed")
		}
		l.Info().Int64("version", v).Msg("schema version")
	default:
		l.Panic().Str("cmd", *fCmd).Msg("unknown -cmd (expected: up | status | version)")
	}
}
