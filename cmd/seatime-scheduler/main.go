package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"seatime/internal/modkit"
	"seatime/internal/modkit/module"
	"seatime/internal/modkit/repokit"
	"seatime/internal/platform/config"
	"seatime/internal/platform/logger"
	"seatime/internal/platform/store"

	schedmod "seatime/internal/services/scheduler/module"
	seatimemod "seatime/internal/services/seatime/module"
	stservice "seatime/internal/services/seatime/service"
)

func main() {
	var (
		fMode  = flag.String("mode", "loop", "scheduler mode: loop | once | reconcile")
		fOwner = flag.String("owner", "", "reconcile mode: limit the sweep to one owner id (empty = every owner)")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CH_")

	lopts := logger.FromEnv()
	lopts.Service = "seatime-scheduler"
	logger.Init(lopts)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		AppName: "seatime-scheduler",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
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

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	seat := seatimemod.New(deps)
	if st.CH != nil {
		if err := stservice.EnsureMirror(ctx, st.CH, seat.Options().MirrorTable); err != nil {
			l.Panic().Err(err).Msg("clickhouse mirror table")
		}
	}

	module.Register(seat)
	sp, ok := module.PortsAs[seatimemod.Ports](seat.Name())
	if !ok {
		l.Panic().Msg("seatime ports not registered")
	}
	sched := schedmod.New(deps, sp.Check)
	module.Register(sched)

	ports := module.MustPortsOf[schedmod.Ports](sched)

	switch *fMode {
	case "loop":
		// runs until SIGINT or SIGTERM
		if err := ports.Worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			l.Fatal().Err(err).Msg("scheduler loop failed")
		}

	case "once":
		rep, err := ports.Runner.RunOnce(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("scheduler pass failed")
		}
		l.Info().
			Int("claimed", rep.Claimed).
			Int("succeeded", rep.Succeeded).
			Int("failed", rep.Failed).
			Msg("scheduler pass complete")

	case "reconcile":
		rep, err := ports.Reconciler.Reconcile(ctx, *fOwner)
		if err != nil {
			l.Fatal().Err(err).Msg("reconcile failed")
		}
		l.Info().
			Int("created", rep.Created).
			Int("reactivated", rep.Reactivated).
			Int("already_active", rep.AlreadyActive).
			Int("deactivated", rep.Deactivated).
			Msg("reconcile complete")

	default:
		l.Panic().Str("mode", *fMode).Msg("scheduler unknown -mode (expected: loop | once | reconcile)")
	}
}
