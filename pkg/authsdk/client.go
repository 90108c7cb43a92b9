package authsdk

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/cognitoauth/pkg/cryptox"
	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
)

// Client is the façade over one user pool and app client. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	cfg      Config
	idp      IdentityProvider
	keys     *jwtx.KeyDirectory
	verifier *jwtx.Verifier
	now      func() time.Time
}

type options struct {
	keys       *jwtx.KeyDirectory
	keySet     *jwtx.KeySet
	httpClient *http.Client
	now        func() time.Time
}

// Option customises a Client.
type Option func(*options)

// WithKeyDirectory shares a key directory between clients. Clients of the
// same pool then download its keys once.
func WithKeyDirectory(d *jwtx.KeyDirectory) Option {
	return func(o *options) { o.keys = d }
}

// WithKeySet installs a pre-fetched key set so verification never reaches
// the network.
func WithKeySet(ks *jwtx.KeySet) Option {
	return func(o *options) { o.keySet = ks }
}

// WithHTTPClient sets the client used to download keys. It is ignored when
// WithKeyDirectory is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithClock replaces time.Now for expiry checks and session refresh.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewClient validates cfg and returns a Client calling idp.
func NewClient(cfg Config, idp IdentityProvider, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if idp == nil {
		return nil, ErrNilProvider
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	keys := o.keys
	if keys == nil {
		keys = jwtx.NewKeyDirectory(o.httpClient)
	}
	if o.keySet != nil {
		keys.Set(cfg.Region, cfg.UserPoolID, o.keySet)
	}

	return &Client{
		cfg:      cfg,
		idp:      idp,
		keys:     keys,
		verifier: &jwtx.Verifier{Keys: keys, Now: o.now},
		now:      o.now,
	}, nil
}

// Region returns the pool's region.
func (c *Client) Region() string { return c.cfg.Region }

// UserPoolID returns the pool id.
func (c *Client) UserPoolID() string { return c.cfg.UserPoolID }

// ClientID returns the app client id.
func (c *Client) ClientID() string { return c.cfg.ClientID }

func (c *Client) secretHash(username string) (string, error) {
	return cryptox.SecretHash(username, c.cfg.ClientID, c.cfg.ClientSecret)
}
