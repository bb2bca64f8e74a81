package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/hexgrid/pkg/buildinfo"
	"github.com/matzehuels/hexgrid/pkg/cache"
	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/httputil"
	"github.com/matzehuels/hexgrid/pkg/observability"
)

const cacheKeyType = "dataset"

// maxBodySize bounds remote dataset bodies.
const maxBodySize = 64 << 20

// Fetcher opens a dataset location.
type Fetcher interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to [Fetcher].
type FetcherFunc func(ctx context.Context, location string) (io.ReadCloser, error)

// Open calls f.
func (f FetcherFunc) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return f(ctx, location)
}

// FileFetcher opens local files.
type FileFetcher struct{}

// Open opens the file at location.
func (FileFetcher) Open(_ context.Context, location string) (io.ReadCloser, error) {
	return os.Open(location)
}

// HTTPFetcher downloads http(s) locations, caching bodies and retrying
// transient failures.
type HTTPFetcher struct {
	Client   *http.Client
	Cache    cache.Cache
	TTL      time.Duration
	Attempts int
	Delay    time.Duration // Initial retry delay
}

// NewHTTPFetcher returns an HTTPFetcher with the given cache (nil disables
// caching) and sensible retry defaults.
func NewHTTPFetcher(c cache.Cache, ttl, timeout time.Duration) *HTTPFetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: timeout},
		Cache:    c,
		TTL:      ttl,
		Attempts: httputil.DefaultAttempts,
		Delay:    httputil.DefaultDelay,
	}
}

// Open returns the body at location, from cache when fresh.
func (f *HTTPFetcher) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	key := cache.DatasetKey(location)
	if data, ok, err := f.Cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	var body []byte
	err := httputil.Retry(ctx, f.Attempts, f.Delay, func() error {
		b, err := f.get(ctx, location)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fetchError(location, err)
	}

	// A failed cache write still leaves a usable body.
	if err := f.Cache.Set(ctx, key, body, f.TTL); err == nil {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(body))
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (f *HTTPFetcher) get(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, httputil.Retryable(err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := httputil.CheckResponse(resp); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, httputil.Retryable(err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", location, maxBodySize)
	}
	return body, nil
}

// fetchError classifies a failed download as TIMEOUT or NETWORK_ERROR.
func fetchError(location string, err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return hgerrors.Wrap(hgerrors.ErrCodeTimeout, err, "fetch %s timed out", location)
	}
	return hgerrors.Wrap(hgerrors.ErrCodeNetwork, err, "fetch %s", location)
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

// MultiFetcher routes http(s) locations to Remote and everything else to Local.
type MultiFetcher struct {
	Local  Fetcher
	Remote Fetcher
}

// NewMultiFetcher returns a MultiFetcher using [FileFetcher] for local paths.
// A nil remote rejects URLs.
func NewMultiFetcher(remote Fetcher) *MultiFetcher {
	return &MultiFetcher{Local: FileFetcher{}, Remote: remote}
}

// Open dispatches on the location scheme.
func (m *MultiFetcher) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsRemote(location) {
		if m.Remote == nil {
			return nil, fmt.Errorf("remote datasets are disabled: %s", location)
		}
		return m.Remote.Open(ctx, location)
	}
	local := m.Local
	if local == nil {
		local = FileFetcher{}
	}
	return local.Open(ctx, location)
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
