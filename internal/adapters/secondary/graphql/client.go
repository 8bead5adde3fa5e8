// Package graphql is the HTTP transport for the tracking server's GraphQL
// endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cenk/backoff"
	"github.com/google/uuid"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/rs/dnscache"
	log "github.com/sirupsen/logrus"

	"github.com/verigle/wandb/internal/config"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/documents"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gql"
	"github.com/verigle/wandb/internal/gqlbase"
)

const (
	userAgent       = "wandb-go"
	maxResponseSize = 64 << 20
)

var serverInfoDoc = gql.MustParse(documents.ServerInfoGQL)

var _ ports.GraphQLClient = (*Client)(nil)

// Client posts GraphQL documents to <url>/graphql with retries and a circuit
// breaker around the endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	breaker  *circuit.Breaker

	maxRetries      int
	initialInterval time.Duration
	maxElapsed      time.Duration

	stop     chan struct{}
	stopOnce sync.Once

	infoMu sync.Mutex
	info   *serverInfo
}

type serverInfo struct {
	maxCLIVersion string
	features      map[string]bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default DNS-caching HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithMaxRetries sets how many times a retryable request is retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithInitialInterval sets the first retry delay.
func WithInitialInterval(d time.Duration) Option {
	return func(c *Client) {
		c.initialInterval = d
	}
}

// WithBreaker replaces the circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// NewGraphQLClient creates a new GraphQL client adapter. Close releases the
// background DNS refresher.
func NewGraphQLClient(api *config.APIConfig, retry *config.RetryConfig, opts ...Option) *Client {
	timeout := api.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		endpoint:        strings.TrimRight(api.URL, "/") + "/graphql",
		apiKey:          api.Key,
		maxRetries:      retry.MaxAttempts,
		initialInterval: retry.InitialInterval,
		maxElapsed:      retry.MaxElapsed,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{
			Timeout:   timeout,
			Transport: c.cachingTransport(),
		}
	}

	if c.breaker == nil {
		threshold := retry.BreakerThreshold
		if threshold <= 0 {
			threshold = 10
		}
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = 10 * time.Second
		expBackoff.MaxInterval = 2 * time.Minute
		expBackoff.Multiplier = 2.0
		expBackoff.Reset()

		c.breaker = circuit.NewBreakerWithOptions(&circuit.Options{
			BackOff:    expBackoff,
			ShouldTrip: circuit.ThresholdTripFunc(threshold),
		})
	}

	return c
}

func (c *Client) cachingTransport() *http.Transport {
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				resolver.Refresh(true)
			case <-c.stop:
				return
			}
		}
	}()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ips, err := resolver.LookupHost(ctx, host)
			if err != nil {
				return nil, err
			}
			for _, ip := range ips {
				conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
				if err == nil {
					return conn, nil
				}
			}
			return nil, fmt.Errorf("failed to dial any resolved IP for %s", host)
		},
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Close stops the DNS refresher. It is safe to call more than once.
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

// Tripped reports whether the circuit breaker is open.
func (c *Client) Tripped() bool {
	return c.breaker.Tripped()
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Execute runs doc with vars and decodes the "data" object into out, which
// must be a pointer to a generated result type or nil.
func (c *Client) Execute(ctx context.Context, doc *gql.Document, vars map[string]any, out any) error {
	if !c.breaker.Ready() {
		return fmt.Errorf("graphql %s: circuit breaker open: %w", doc.Name, ErrUpstreamDown)
	}

	body, err := json.Marshal(request{Query: doc.Source, OperationName: doc.Name, Variables: vars})
	if err != nil {
		return fmt.Errorf("graphql %s: encode request: %w", doc.Name, err)
	}

	var (
		resp      *response
		clientErr error
	)
	err = c.breaker.Call(func() error {
		r, sendErr := c.send(ctx, doc.Name, body)
		if sendErr != nil && !tripsBreaker(sendErr) {
			clientErr = sendErr
			return nil
		}
		resp = r
		return sendErr
	}, 0)
	if errors.Is(err, circuit.ErrBreakerOpen) {
		return fmt.Errorf("graphql %s: circuit breaker open: %w", doc.Name, ErrUpstreamDown)
	}
	if err != nil {
		return err
	}
	if clientErr != nil {
		return clientErr
	}

	if len(resp.Errors) > 0 {
		return &GraphQLErrors{Operation: doc.Name, Errors: resp.Errors}
	}
	if out == nil {
		return nil
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return fmt.Errorf("graphql %s: response has no data", doc.Name)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("graphql %s: decode data: %w", doc.Name, err)
	}
	return gqlbase.Validate(out)
}

// send posts body, retrying rate limits, 5xx responses and network errors
// with exponential backoff.
func (c *Client) send(ctx context.Context, operation string, body []byte) (*response, error) {
	expBackoff := backoff.NewExponentialBackOff()
	if c.initialInterval > 0 {
		expBackoff.InitialInterval = c.initialInterval
	}
	if c.maxElapsed > 0 {
		expBackoff.MaxElapsedTime = c.maxElapsed
	}
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.maxRetries > 0 {
		policy = backoff.WithMaxRetries(expBackoff, uint64(c.maxRetries))
	}

	requestID, ok := ports.RequestIDFrom(ctx)
	if !ok {
		requestID = uuid.New().String()
	}
	attempt := 0
	var resp *response
	err := backoff.RetryNotify(func() error {
		attempt++
		r, err := c.post(ctx, requestID, operation, body)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		log.WithFields(log.Fields{
			"operation":  operation,
			"request_id": requestID,
			"attempt":    attempt,
			"wait":       wait.String(),
		}).WithError(err).Warn("retrying graphql request")
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, requestID, operation string, body []byte) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("graphql %s: create request: %w", operation, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if c.apiKey != "" {
		req.SetBasicAuth("api", c.apiKey)
	}

	start := time.Now()
	httpResp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("graphql %s: %w", operation, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("graphql %s: read response: %w", operation, err)
	}

	log.WithFields(log.Fields{
		"operation":  operation,
		"request_id": requestID,
		"status":     httpResp.StatusCode,
		"latency":    time.Since(start).String(),
	}).Debug("graphql request")

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, &HTTPError{StatusCode: httpResp.StatusCode, Body: string(raw), Err: ErrRateLimited}
	case httpResp.StatusCode >= 500:
		return nil, &HTTPError{StatusCode: httpResp.StatusCode, Body: string(raw), Err: ErrUpstreamDown}
	case httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden:
		return nil, backoff.Permanent(&HTTPError{StatusCode: httpResp.StatusCode, Body: string(raw), Err: ErrUnauthorized})
	case httpResp.StatusCode >= 400:
		// GraphQL validation failures come back as 400 with an errors body.
		var r response
		if json.Unmarshal(raw, &r) == nil && len(r.Errors) > 0 {
			return &r, nil
		}
		return nil, backoff.Permanent(&HTTPError{StatusCode: httpResp.StatusCode, Body: string(raw), Err: errors.New(http.StatusText(httpResp.StatusCode))})
	}

	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("graphql %s: decode response: %w", operation, err))
	}
	return &r, nil
}

// tripsBreaker reports whether err says something about the endpoint's
// health rather than about the request.
func tripsBreaker(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// ============================================================================
// Server Info
// ============================================================================

func (c *Client) serverInfo(ctx context.Context) (*serverInfo, error) {
	c.infoMu.Lock()
	defer c.infoMu.Unlock()
	if c.info != nil {
		return c.info, nil
	}

	var res operations.ServerInfo
	if err := c.Execute(ctx, serverInfoDoc, nil, &res); err != nil {
		return nil, fmt.Errorf("fetch server info: %w", err)
	}

	info := &serverInfo{features: make(map[string]bool)}
	if res.ServerInfo != nil {
		if v, ok := res.ServerInfo.CliVersionInfo["max_cli_version"].(string); ok {
			info.maxCLIVersion = v
		}
		for _, f := range res.ServerInfo.Features {
			info.features[f.Name] = f.IsEnabled
		}
	}
	c.info = info
	return info, nil
}

// VersionSupported reports whether the server's max_cli_version is at least
// min. Servers that do not report a version support nothing.
func (c *Client) VersionSupported(ctx context.Context, min string) (bool, error) {
	want, err := semver.NewVersion(min)
	if err != nil {
		return false, fmt.Errorf("parse version %q: %w", min, err)
	}
	info, err := c.serverInfo(ctx)
	if err != nil {
		return false, err
	}
	if info.maxCLIVersion == "" {
		return false, nil
	}
	have, err := semver.NewVersion(info.maxCLIVersion)
	if err != nil {
		log.WithError(err).WithField("max_cli_version", info.maxCLIVersion).Warn("unparseable server version")
		return false, nil
	}
	return !have.LessThan(want), nil
}

// ServerSupports reports whether the server lists feature as enabled.
func (c *Client) ServerSupports(ctx context.Context, feature string) (bool, error) {
	info, err := c.serverInfo(ctx)
	if err != nil {
		return false, err
	}
	return info.features[feature], nil
}
