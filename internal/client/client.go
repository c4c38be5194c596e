package client

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/go2web/go2web/internal/config"
	"github.com/go2web/go2web/internal/urlutil"
)

// Cache is consulted before and updated after successful GET requests.
// Implementations decide the storage medium.
type Cache interface {
	// Get returns a cached body and headers for (url, accept) when an entry
	// exists and is younger than maxAge.
	Get(url, accept string, maxAge time.Duration) (body string, headers map[string]string, ok bool)

	// Set stores a response body and headers under (url, accept).
	Set(url, accept, body string, headers map[string]string) error
}

// Client issues raw HTTP/1.1 requests over plain or TLS sockets. It is
// synchronous: each call blocks for the full connect/send/receive cycle.
type Client struct {
	config  *config.Config
	cache   Cache
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a Client. cache may be nil to disable caching.
func New(cfg *config.Config, cache Cache, log zerolog.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		config:  cfg,
		cache:   cache,
		limiter: limiter,
		log:     log,
	}
}

// NewRequest returns a GET request for url with redirect handling taken from
// the client configuration.
func (c *Client) NewRequest(url string) *Request {
	return &Request{
		URL:             url,
		Method:          "GET",
		FollowRedirects: c.config.FollowRedirects,
		MaxRedirects:    c.config.MaxRedirects,
	}
}

// Get fetches url with an optional Accept value.
func (c *Client) Get(ctx context.Context, url, accept string) (*Response, error) {
	req := c.NewRequest(url)
	req.Accept = accept
	return c.Do(ctx, req)
}

// Do performs the request, following redirects up to the request's hop limit.
// The method and body pass through every hop unchanged, including 303.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = "GET"
	}

	// Cache consultation happens before any network I/O. Entries inside the
	// freshness window may be stale up to CacheMaxAge.
	if method == "GET" && c.cache != nil {
		if body, headers, ok := c.cache.Get(req.URL, req.Accept, c.config.CacheMaxAge); ok {
			c.log.Debug().Str("url", req.URL).Msg("serving cached response")
			return &Response{
				RequestURL: req.URL,
				FinalURL:   req.URL,
				StatusCode: 200,
				Headers:    headers,
				Body:       body,
				FromCache:  true,
			}, nil
		}
	}

	start := time.Now()
	currentURL := req.URL
	remaining := req.MaxRedirects
	chain := make([]RedirectHop, 0)

	for {
		target, err := urlutil.ParseTarget(currentURL)
		if err != nil {
			return nil, newTransportError("resolving URL", currentURL, err)
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, newTransportError("rate limit wait", currentURL, err)
			}
		}

		raw, err := c.roundTrip(ctx, target, buildWire(req, target, c.config.UserAgent))
		if err != nil {
			return nil, err
		}

		framed, err := frame(raw)
		if err != nil {
			return nil, newFramingError("parsing response", currentURL, err)
		}

		location := headerValue(framed.headers, "Location")
		if req.FollowRedirects && redirectStatuses[framed.statusCode] && location != "" && remaining > 0 {
			chain = append(chain, RedirectHop{
				URL:        currentURL,
				StatusCode: framed.statusCode,
				Location:   location,
			})
			remaining--
			currentURL = urlutil.ResolveRedirect(target, location)
			c.log.Debug().
				Int("status", framed.statusCode).
				Str("location", currentURL).
				Int("hops_left", remaining).
				Msg("following redirect")
			continue
		}

		body, degraded := decodeBody(framed.headers, framed.body)
		if degraded != nil {
			c.log.Warn().Str("url", currentURL).Err(degraded).Msg("decoding degraded, using raw body")
		}

		response := &Response{
			RequestURL:    req.URL,
			FinalURL:      currentURL,
			StatusCode:    framed.statusCode,
			Status:        framed.statusLine,
			Headers:       framed.headers,
			Body:          body,
			RawBody:       framed.body,
			RedirectChain: chain,
			ResponseTime:  time.Since(start),
		}

		if method == "GET" && framed.statusCode == 200 && c.cache != nil {
			if err := c.cache.Set(req.URL, req.Accept, body, framed.headers); err != nil {
				c.log.Warn().Str("url", req.URL).Err(err).Msg("failed to cache response")
			}
		}

		return response, nil
	}
}

// roundTrip dials the target, writes the full request, and reads until the
// peer closes the connection. The response is accumulated in one buffer with
// no length framing; Connection: close semantics terminate the read.
func (c *Client) roundTrip(ctx context.Context, target urlutil.Target, wire []byte) ([]byte, error) {
	conn, err := c.dial(ctx, target)
	if err != nil {
		return nil, newTransportError("connecting", target.String(), err)
	}
	defer conn.Close()

	if c.config.Timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(c.config.Timeout)); err != nil {
			return nil, newTransportError("setting deadline", target.String(), err)
		}
	}

	written := 0
	for written < len(wire) {
		n, err := conn.Write(wire[written:])
		if err != nil {
			return nil, newTransportError("sending request", target.String(), err)
		}
		written += n
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, newTransportError("receiving response", target.String(), err)
	}

	return raw, nil
}

// dial opens a plain TCP connection for http, or a TLS connection with SNI
// and standard certificate verification for https.
func (c *Client) dial(ctx context.Context, target urlutil.Target) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: c.config.Timeout}

	if target.Scheme == "https" {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: target.Host},
		}
		return tlsDialer.DialContext(ctx, "tcp", target.Address())
	}

	return dialer.DialContext(ctx, "tcp", target.Address())
}
