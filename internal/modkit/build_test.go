package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seatime/internal/modkit/httpkit"
	phttp "seatime/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	b.Register(nil)
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	t.Parallel()

	mw := []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}
	b := Build(WithName("seatime"), WithPrefix("/x"), WithMiddlewares(mw...), WithPorts(42))
	mw[0] = nil
	if b.Mw[0] == nil {
		t.Fatalf("Build should copy middlewares")
	}
	if b.Name != "seatime" || b.Prefix != "/x" || b.Ports != 42 {
		t.Fatalf("options not applied %+v", b)
	}
}

func TestBuilt_MountAppliesPrefixMiddlewareAndRegister(t *testing.T) {
	t.Parallel()

	var hits []string
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits = append(hits, "mw")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(
		WithPrefix("/mod"),
		WithMiddlewares(mark),
		WithRegister(func(r Router) {
			httpkit.GetJSON(r, "/extra", func(*http.Request) (any, error) { return "extra", nil })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r Router) {
		httpkit.GetJSON(r, "/own", func(*http.Request) (any, error) { return "own", nil })
	})

	for _, p := range []string{"/mod/own", "/mod/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", p, rec.Code)
		}
	}
	if len(hits) != 2 {
		t.Fatalf("middleware hits = %d, want 2", len(hits))
	}
}

func TestDeps_Clock(t *testing.T) {
	t.Parallel()

	if (Deps{}).Clock() == nil {
		t.Fatalf("default clock nil")
	}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d := Deps{Now: func() time.Time { return at }}
	if got := d.Clock()(); !got.Equal(at) {
		t.Fatalf("clock = %v", got)
	}
}
