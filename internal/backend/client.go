// Package backend is the gateway to the library's GraphQL endpoint,
// the single asynchronous boundary of the client. It owns transport
// tuning, bearer-token injection, request correlation, and the
// mapping of transport and GraphQL failures onto the client's error
// taxonomy.
package backend

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"
	"golang.org/x/time/rate"
)

// TokenSource supplies the session token for request authorization.
// Implemented by the session store; Login runs before any token
// exists, so the source may report no token.
type TokenSource interface {
	Token() (string, bool)
}

// Config holds gateway settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	// RequestsPerSecond caps outbound calls client-side. Zero
	// disables the limiter.
	RequestsPerSecond float64
	Burst             int
}

// Client executes GraphQL operations against the backend.
type Client struct {
	gql     *graphql.Client
	tokens  TokenSource
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a gateway with a tuned HTTP transport. tokens may
// be nil for unauthenticated use.
func NewClient(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst == 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		gql:     graphql.NewClient(cfg.Endpoint, graphql.WithHTTPClient(httpClient)),
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

// run executes one GraphQL operation with auth and correlation
// headers, decoding the data payload into resp.
func (c *Client) run(ctx context.Context, req *graphql.Request, resp any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if err := c.gql.Run(ctx, req, resp); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError classifies a gateway failure. The graphql client reports
// backend-side errors with a "graphql:" prefix; everything else is a
// transport failure.
func mapError(err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, "graphql:") {
		reason := strings.TrimSpace(strings.TrimPrefix(msg, "graphql:"))
		return &RejectedError{Reason: reason}
	}
	return &UnavailableError{cause: err}
}
