package module

import (
	"time"

	"seatime/internal/platform/config"
)

// Options controls seatime behavior. Values are read from env
type Options struct {
	// SEATIME_
	ThresholdKnots   float64
	CeilingKnots     float64
	MinimumHours     float64
	RecentWindow     int
	ListLimit        int
	StatementTimeout time.Duration
	LockWait         time.Duration
	MirrorTable      string

	// SCHEDULER_INTERVAL_HOURS is written on the task when a vessel is activated
	IntervalHours float64

	// AIS_
	AISBaseURL    string
	AISUserAgent  string
	AISSource     string
	AISTimeout    time.Duration
	AISStaleAfter time.Duration
	AISCacheTTL   time.Duration
	AISRatePerSec float64
	AISBurst      int
	AISKeys       []string
}

// FromConfig reads options using the SEATIME_, SCHEDULER_ and AIS_ prefixes
func FromConfig(cfg config.Conf) Options {
	st := cfg.Prefix("SEATIME_")
	sc := cfg.Prefix("SCHEDULER_")
	a := cfg.Prefix("AIS_")
	return Options{
		ThresholdKnots:   st.MayFloat64("THRESHOLD_KNOTS", 2.0),
		CeilingKnots:     st.MayFloat64("CEILING_KNOTS", 60),
		MinimumHours:     st.MayFloat64("MINIMUM_HOURS", 4.0),
		RecentWindow:     st.MayInt("RECENT_WINDOW", 5),
		ListLimit:        st.MayInt("LIST_LIMIT", 200),
		StatementTimeout: st.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
		LockWait:         st.MayDuration("LOCK_WAIT", time.Minute),
		MirrorTable:      st.MayString("CH_TABLE", "ais_checks"),

		IntervalHours: sc.MayFloat64("INTERVAL_HOURS", 1.0),

		AISBaseURL:    a.MayString("BASE_URL", "https://api.aisprovider.example/v1"),
		AISUserAgent:  a.MayString("USER_AGENT", "seatime/1.0"),
		AISSource:     a.MayString("SOURCE", "ais"),
		AISTimeout:    a.MayDuration("TIMEOUT", 10*time.Second),
		AISStaleAfter: a.MayDuration("STALE_AFTER", 2*time.Hour),
		AISCacheTTL:   a.MayDuration("CACHE_TTL", 60*time.Second),
		AISRatePerSec: a.MayFloat64("RPS", 1.0),
		AISBurst:      a.MayInt("BURST", 2),
		AISKeys:       a.MayCSV("API_KEYS", nil),
	}
}
