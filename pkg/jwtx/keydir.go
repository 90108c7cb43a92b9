package jwtx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

const (
	// DefaultFetchTimeout bounds a single key download.
	DefaultFetchTimeout = 10 * time.Second

	// maxJWKSBytes caps how much of a key response is read.
	maxJWKSBytes = 1 << 20
)

// KeyDirectory downloads and caches the key set of each user pool. A pool's
// keys are fetched at most once: concurrent callers share the in-flight
// download, and the result is kept until Invalidate or Set replaces it.
// Failed downloads are not cached, so the next caller tries again.
//
// The zero value is ready to use and fetches from the public endpoints with
// http.DefaultClient.
type KeyDirectory struct {
	// HTTPClient performs the download. Nil means http.DefaultClient.
	HTTPClient *http.Client

	// BaseURL replaces the regional host when set. Keys are then read from
	// {BaseURL}/{userPoolID}/.well-known/jwks.json.
	BaseURL string

	// Timeout bounds each download. Zero means DefaultFetchTimeout.
	Timeout time.Duration

	mu    sync.RWMutex
	sets  map[string]*KeySet
	gens  map[string]uint64 // bumped by Set and Invalidate
	group singleflight.Group
}

// NewKeyDirectory returns a directory using client for downloads.
func NewKeyDirectory(client *http.Client) *KeyDirectory {
	return &KeyDirectory{HTTPClient: client, Timeout: DefaultFetchTimeout}
}

func poolKey(region, userPoolID string) string {
	return region + "/" + userPoolID
}

func checkPool(region, userPoolID string) error {
	if region == "" {
		return ErrMissingRegion
	}
	if userPoolID == "" {
		return ErrMissingPool
	}
	return nil
}

// Get returns the pool's key set, downloading it on first use.
//
// The download is detached from ctx cancellation so that one caller giving
// up does not fail the others waiting on the same fetch. It is still bound
// by Timeout.
func (d *KeyDirectory) Get(ctx context.Context, region, userPoolID string) (*KeySet, error) {
	if err := checkPool(region, userPoolID); err != nil {
		return nil, err
	}

	key := poolKey(region, userPoolID)
	if ks := d.cached(key); ks != nil {
		return ks, nil
	}

	ch := d.group.DoChan(key, func() (any, error) {
		// A fetch that finished between the cache check and joining the
		// group has already stored its result.
		ks, gen := d.lookup(key)
		if ks != nil {
			return ks, nil
		}
		ks, err := d.fetch(context.WithoutCancel(ctx), d.url(region, userPoolID))
		if err != nil {
			return nil, err
		}
		return d.storeIfCurrent(key, gen, ks), nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*KeySet), nil
	case <-ctx.Done():
		return nil, autherr.Wrap(autherr.KindKeyFetch, "waiting for key set", ctx.Err())
	}
}

// Set installs ks as the pool's key set, replacing any cached one. It is
// how callers inject keys obtained out of band. A download already in
// flight for the pool does not overwrite ks.
func (d *KeyDirectory) Set(region, userPoolID string, ks *KeySet) {
	key := poolKey(region, userPoolID)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.init()
	d.sets[key] = ks
	d.gens[key]++
}

// Invalidate drops the cached key set so the next Get downloads again. A
// download already in flight is not cached when it completes.
func (d *KeyDirectory) Invalidate(region, userPoolID string) {
	key := poolKey(region, userPoolID)

	d.mu.Lock()
	d.init()
	delete(d.sets, key)
	d.gens[key]++
	d.mu.Unlock()

	d.group.Forget(key)
}

// Cached reports whether the pool's key set is held without fetching.
func (d *KeyDirectory) Cached(region, userPoolID string) bool {
	return d.cached(poolKey(region, userPoolID)) != nil
}

func (d *KeyDirectory) cached(key string) *KeySet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sets[key]
}

// lookup returns the cached set and the pool's generation.
func (d *KeyDirectory) lookup(key string) (*KeySet, uint64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sets[key], d.gens[key]
}

// storeIfCurrent caches a downloaded set unless Set or Invalidate ran since
// gen was read. It returns the set callers should use: the injected one if
// Set won, otherwise ks.
func (d *KeyDirectory) storeIfCurrent(key string, gen uint64, ks *KeySet) *KeySet {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.init()
	if d.gens[key] != gen {
		if current := d.sets[key]; current != nil {
			return current
		}
		return ks
	}
	d.sets[key] = ks
	return ks
}

func (d *KeyDirectory) init() {
	if d.sets == nil {
		d.sets = make(map[string]*KeySet)
	}
	if d.gens == nil {
		d.gens = make(map[string]uint64)
	}
}

func (d *KeyDirectory) url(region, userPoolID string) string {
	if d.BaseURL != "" {
		return jwksURLFromBase(d.BaseURL, userPoolID)
	}
	return JWKSURL(region, userPoolID)
}

func (d *KeyDirectory) fetch(ctx context.Context, url string) (*KeySet, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, autherr.Wrap(autherr.KindKeyFetch, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	client := d.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, autherr.Wrap(autherr.KindKeyFetch, "GET "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, autherr.New(autherr.KindKeyFetch,
			fmt.Sprintf("GET %s: unexpected status %d", url, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJWKSBytes+1))
	if err != nil {
		return nil, autherr.Wrap(autherr.KindKeyFetch, "read key set", err)
	}
	if len(body) > maxJWKSBytes {
		return nil, ErrJWKSTooBig
	}

	return ParseJWKS(body)
}
