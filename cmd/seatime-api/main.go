// @title         Sea Time API
// @version       0.1.0
// @description   Vessel AIS sampling, sea time entries and their confirmation
// @securityDefinitions.apikey bearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/config"
	"seatime/internal/platform/logger"
	"seatime/internal/platform/migrate"
	phttp "seatime/internal/platform/net/http"
	"seatime/internal/platform/store"

	"seatime/internal/services/api"
	seatimemod "seatime/internal/services/seatime/module"
	stservice "seatime/internal/services/seatime/service"
)

func main() {
	fMigrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CH_")
	apiCfg := root.Prefix("API_")

	lopts := logger.FromEnv()
	lopts.Service = "seatime-api"
	logger.Init(lopts)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := pgCfg.MustString("DBURL")
	if *fMigrate {
		if err := migrate.Up(ctx, dsn); err != nil {
			l.Panic().Err(err).Msg("migrate up failed")
		}
	}

	st, err := store.Open(ctx, store.Config{
		AppName: "seatime-api",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dsn,
			MaxConns:    int32(pgCfg.MayInt("MAXCONNS", 8)),
			SlowQueryMs: pgCfg.MayInt("SLOWQUERYMS", 500),
			LogSQL:      pgCfg.MayBool("LOGSQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			URL:     chCfg.MayString("DBURL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if st.CH != nil {
		table := seatimemod.FromConfig(root).MirrorTable
		if err := stservice.EnsureMirror(ctx, st.CH, table); err != nil {
			l.Panic().Err(err).Str("table", table).Msg("clickhouse mirror table")
		}
	}

	// reads API_PORT
	srv := phttp.NewServer(root)

	api.Mount(srv.Router(), api.Options{
		Config:        root,
		Store:         st,
		Logger:        l,
		EnableSwagger: apiCfg.MayBool("SWAGGER", true),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
