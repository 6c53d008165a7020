// Package netbird is a minimal client for the NetBird management API. It
// covers exactly what an inventory build needs: construct an HTTPS client
// from source configuration and list peers once.
package netbird

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-rootcerts"
)

const (
	// DefaultBasePath is where the management API is mounted unless the
	// source configuration overrides it.
	DefaultBasePath = "/api"

	// DefaultTimeout bounds the list-peers round trip, body read included.
	DefaultTimeout = 30 * time.Second

	userAgent = "netbird-inventory/1.0"
)

// TLSConfig controls how the management server's certificate is verified.
type TLSConfig struct {
	// CACert is a path to a PEM-encoded CA bundle to verify the server
	// certificate against. Empty means the system pool.
	CACert string

	// Insecure disables certificate verification entirely.
	Insecure bool
}

// Config is used to configure the creation of a Client.
type Config struct {
	// Host is the management API host without a scheme, optionally with an
	// embedded ":port". It is used verbatim; the scheme is always https.
	Host string

	// Token is the personal access token presented on every request. It is
	// never written to logs or error messages.
	Token string

	// BasePath is the API prefix, DefaultBasePath when empty.
	BasePath string

	// Timeout bounds each request, DefaultTimeout when zero.
	Timeout time.Duration

	// TLS controls certificate verification.
	TLS TLSConfig

	// HTTPClient replaces the transport when set. Timeout and TLS settings
	// from this Config are then ignored; tests use this to point the client
	// at a local server.
	HTTPClient *http.Client
}

// Client talks to one NetBird management server.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient validates the configuration and constructs a client. No network
// activity happens here; the single API call is made by the peers service.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, fmt.Errorf("netbird: host is required")
	}
	if strings.Contains(host, "://") {
		return nil, fmt.Errorf("netbird: host %q must not include a scheme", host)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("netbird: api token is required")
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimSuffix(basePath, "/")

	base, err := url.Parse("https://" + host + basePath)
	if err != nil {
		return nil, fmt.Errorf("netbird: invalid host %q: %w", host, err)
	}
	if base.Host != host {
		return nil, fmt.Errorf("netbird: invalid host %q", host)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		transport := httpClient.Transport.(*http.Transport)
		transport.TLSClientConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		if err := configureTLS(transport.TLSClientConfig, cfg.TLS); err != nil {
			return nil, fmt.Errorf("netbird: configure tls: %w", err)
		}

		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient.Timeout = timeout
	}

	return &Client{
		base:  base,
		token: cfg.Token,
		http:  httpClient,
	}, nil
}

// configureTLS loads the CA bundle, when given, and applies the insecure
// toggle. The bundle replaces the system pool rather than extending it.
func configureTLS(tc *tls.Config, cfg TLSConfig) error {
	if cfg.CACert != "" {
		err := rootcerts.ConfigureTLS(tc, &rootcerts.Config{CAFile: cfg.CACert})
		if err != nil {
			return err
		}
	}
	if cfg.Insecure {
		tc.InsecureSkipVerify = true
	}
	return nil
}

// newRequest builds a request for an endpoint under the configured base
// path, with auth and content headers set.
func (c *Client) newRequest(ctx context.Context, method, endpoint string) (*http.Request, error) {
	u := *c.base
	u.Path = path.Join(u.Path, endpoint)
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out. Numbers
// decode as json.Number so values round-trip without float drift.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
