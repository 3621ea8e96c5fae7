// Package api provides the HTTP API for the application
package api

import (
	"time"

	"seatime/internal/platform/config"
	"seatime/internal/platform/logger"
	phttp "seatime/internal/platform/net/http"
	"seatime/internal/platform/net/middleware"
	"seatime/internal/platform/store"

	"seatime/internal/modkit"
	"seatime/internal/modkit/httpkit"
	"seatime/internal/modkit/module"
	"seatime/internal/modkit/swaggerkit"

	"seatime/internal/services/api/docs"
	metamod "seatime/internal/services/api/meta/module"
	schedmod "seatime/internal/services/scheduler/module"
	stdomain "seatime/internal/services/seatime/domain"
	seatimemod "seatime/internal/services/seatime/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
	// Auth verifies bearer tokens; nil builds an HS256 port from AUTH_
	Auth middleware.AuthPort
	// Now overrides the wall clock for every module
	Now func() time.Time
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	root := opt.Config

	deps := modkit.Deps{
		Cfg: root,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		Now: opt.Now,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	auth := opt.Auth
	if auth == nil {
		ac := root.Prefix("AUTH_")
		auth = httpkit.NewPortFunc(httpkit.HS256(
			[]byte(ac.MustString("JWT_SECRET")),
			ac.MayString("ISSUER", ""),
			ac.MayDuration("LEEWAY", 30*time.Second),
		))
	}
	protected := modkit.WithMiddlewares(middleware.Auth(auth))

	// the scheduler drives the same pipeline manual checks use
	seat := seatimemod.New(deps, protected)
	checker := module.MustPortsOf[stdomain.CheckPort](seat)
	sched := schedmod.New(deps, checker, protected)

	mods := []module.Module{
		metamod.New(deps, "seatime-api"),
		seat,
		sched,
	}

	ac := root.Prefix("API_")
	r.Use(middleware.Heartbeat("/healthz"))
	if ac.MayBool("TRUST_PROXY", false) {
		r.Use(middleware.RealIP())
	}
	r.Use(middleware.Defaults(ac.MayDuration("TIMEOUT", 60*time.Second))...)
	r.Use(middleware.AccessLog(ac.MayDuration("SLOW", time.Second)))
	if origins := ac.MayCSV("CORS_ORIGINS", nil); len(origins) > 0 {
		r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}))
	}
	if lvl := ac.MayInt("GZIP_LEVEL", 5); lvl > 0 {
		r.Use(middleware.Compress(lvl))
	}

	swaggerkit.Mount(r, opt.EnableSwagger, docs.SwaggerInfo.ReadDoc)

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m)
			m.MountRoutes(api)
		}
	})
}
