// Package ais is the AIS provider client: one outbound call per fetch, normalized into a sample
package ais

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"seatime/internal/core/sample"
	"seatime/internal/platform/logger"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.aisprovider.example/v1"
	defaultUA         = "seatime"
	defaultTimeout    = 10 * time.Second
	defaultStaleAfter = 2 * time.Hour
	maxBody           = 64 << 10
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	// Source labels samples produced by this client
	Source string
	// Timeout bounds each Fetch, limiter wait included
	Timeout time.Duration
	// StaleAfter turns older provider timestamps into ErrNoDataForVessel
	StaleAfter time.Duration
	// CacheTTL is how long a sample is reused by non forced fetches; 0 disables
	CacheTTL time.Duration
	// RatePerSec and Burst pace outbound calls; RatePerSec 0 means unpaced
	RatePerSec float64
	Burst      int
	// APIKeys rotate on 401, 403 and 429
	APIKeys []string
}

// Target identifies the vessel to sample
type Target struct {
	VesselID string
	MMSI     string
}

// Client fetches vessel positions
type Client struct {
	http    *http.Client
	opts    Options
	keys    []string
	cur     atomic.Int32
	limiter *rate.Limiter
	group   singleflight.Group
	cache   *cache
	log     logger.Logger
	now     func() time.Time
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Source == "" {
		o.Source = "ais"
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.StaleAfter <= 0 {
		o.StaleAfter = defaultStaleAfter
	}
	lim := rate.NewLimiter(rate.Inf, 0)
	if o.RatePerSec > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RatePerSec), burst)
	}
	var keys []string
	for _, k := range o.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return &Client{
		// the per call context carries the deadline
		http:    &http.Client{},
		opts:    o,
		keys:    keys,
		limiter: lim,
		cache:   newCache(o.CacheTTL),
		log:     *logger.Named("ais"),
		now:     time.Now,
	}
}

// Fetch returns the current sample for t
// force skips the local cache and asks the provider not to serve a cached answer
func (c *Client) Fetch(ctx context.Context, t Target, force bool) (sample.Sample, error) {
	mmsi := strings.TrimSpace(t.MMSI)
	if mmsi == "" {
		return sample.Sample{}, fail(ErrNoDataForVessel, 0, errors.New("vessel has no mmsi"))
	}
	if force {
		return c.fetch(ctx, t, mmsi, true)
	}
	if s, ok := c.cache.get(mmsi, c.now()); ok {
		return s, nil
	}
	// the shared call outlives any single caller; fetch applies its own timeout
	ch := c.group.DoChan(mmsi, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), t, mmsi, false)
	})
	select {
	case <-ctx.Done():
		return sample.Sample{}, transportError(ctx.Err())
	case r := <-ch:
		if r.Shared {
			c.log.Debug().Str("mmsi", mmsi).Msg("ais fetch coalesced")
		}
		if r.Err != nil {
			return sample.Sample{}, r.Err
		}
		return r.Val.(sample.Sample), nil
	}
}

func (c *Client) fetch(ctx context.Context, t Target, mmsi string, force bool) (sample.Sample, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	// Wait fails fast when the reservation would outlive the deadline
	if err := c.limiter.Wait(ctx); err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return sample.Sample{}, fail(ErrTimeout, 0, err)
		case errors.Is(err, context.Canceled):
			return sample.Sample{}, fail(ErrProviderUnavailable, 0, err)
		}
		return sample.Sample{}, fail(ErrRateLimited, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/vessels/"+url.PathEscape(mmsi)+"/position", nil)
	if err != nil {
		return sample.Sample{}, fail(ErrProviderUnavailable, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if force {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}
	if key := c.key(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return sample.Sample{}, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return sample.Sample{}, transportError(err)
	}

	retry := retryAfter(resp.Header, c.now())
	c.log.Debug().
		Str("vessel_id", t.VesselID).
		Str("mmsi", mmsi).
		Int("status", resp.StatusCode).
		Bool("force", force).
		Dur("latency", c.now().Sub(start)).
		Dur("retry_after", retry).
		Msg("ais http response")

	switch sc := resp.StatusCode; {
	case sc == http.StatusOK:
	case sc == http.StatusNoContent || sc == http.StatusNotFound:
		return sample.Sample{}, fail(ErrNoDataForVessel, sc, nil)
	case sc == http.StatusTooManyRequests:
		c.rotate()
		return sample.Sample{}, &FetchError{Kind: ErrRateLimited, Status: sc, RetryAfter: retry}
	case sc == http.StatusUnauthorized || sc == http.StatusForbidden:
		c.rotate()
		if isRateLimited(resp.Header) {
			return sample.Sample{}, &FetchError{Kind: ErrRateLimited, Status: sc, RetryAfter: retry}
		}
		return sample.Sample{}, fail(ErrProviderUnavailable, sc, errors.New("provider rejected credentials"))
	default:
		return sample.Sample{}, fail(ErrProviderUnavailable, sc, errors.New(snippet(body)))
	}

	p, ok, err := decode(body)
	if err != nil {
		return sample.Sample{}, fail(ErrProviderUnavailable, resp.StatusCode, err)
	}
	if !ok {
		return sample.Sample{}, fail(ErrNoDataForVessel, resp.StatusCode, errors.New("empty payload"))
	}
	if strings.TrimSpace(p.Timestamp) == "" {
		return sample.Sample{}, fail(ErrNoDataForVessel, resp.StatusCode, errors.New("payload has no timestamp"))
	}
	s, err := normalize(p, mmsi, c.opts.Source)
	if err != nil {
		return sample.Sample{}, fail(ErrProviderUnavailable, resp.StatusCode, err)
	}
	if age := c.now().Sub(s.Timestamp); age > c.opts.StaleAfter {
		return sample.Sample{}, fail(ErrNoDataForVessel, resp.StatusCode, errors.New("stale position, age "+age.Round(time.Second).String()))
	}
	c.cache.put(mmsi, s, c.now())
	return s, nil
}

func (c *Client) key() string {
	if len(c.keys) == 0 {
		return ""
	}
	return c.keys[int(c.cur.Load())%len(c.keys)]
}

func (c *Client) rotate() {
	if len(c.keys) > 1 {
		c.cur.Add(1)
	}
}

// transportError separates deadlines from other transport failures
func transportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fail(ErrTimeout, 0, err)
	}
	return fail(ErrProviderUnavailable, 0, err)
}

func isRateLimited(h http.Header) bool {
	return h.Get("Retry-After") != "" || h.Get("X-RateLimit-Remaining") == "0"
}

// retryAfter reads Retry-After (seconds or HTTP date) or X-RateLimit-Reset (unix seconds)
func retryAfter(h http.Header, now time.Time) time.Duration {
	if v := strings.TrimSpace(h.Get("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		if at, err := http.ParseTime(v); err == nil && at.After(now) {
			return at.Sub(now)
		}
	}
	if v := strings.TrimSpace(h.Get("X-RateLimit-Reset")); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			if at := time.Unix(secs, 0); at.After(now) {
				return at.Sub(now)
			}
		}
	}
	return 0
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 256 {
		s = s[:256]
	}
	if s == "" {
		return "empty body"
	}
	return s
}
