package adp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"draftboard/internal/jsonutil"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultURL is the endpoint served by `draftboard serve` with default settings.
const DefaultURL = "http://localhost:5000/adp"

const tracerName = "draftboard/adp"

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error: %s", e.Text)
}

// Client loads ADP rows from an HTTP endpoint.
type Client struct {
	url    string
	http   *http.Client
	logger zerolog.Logger
	tracer trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is
// ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout. The client is
// copied so a shared *http.Client is never mutated.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		var hc http.Client
		if c.http != nil {
			hc = *c.http
		}
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for fetch outcomes.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for url.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		http:   &http.Client{},
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string { return c.url }

// Fetch performs a single GET and decodes the body as a JSON array of rows.
// Non-2xx responses yield a *StatusError.
func (c *Client) Fetch(ctx context.Context) (Dataset, error) {
	ctx, span := c.tracer.Start(ctx, "adp.fetch",
		trace.WithAttributes(attribute.String("adp.url", c.url)))
	defer span.End()

	ds, err := c.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error().Err(err).Str("url", c.url).Msg("adp fetch failed")
		return Dataset{}, err
	}
	span.SetAttributes(
		attribute.String("adp.load_id", ds.LoadID),
		attribute.Int("adp.rows", ds.Len()),
	)
	c.logger.Info().
		Str("url", c.url).
		Str("load_id", ds.LoadID).
		Int("rows", ds.Len()).
		Msg("adp loaded")
	return ds, nil
}

func (c *Client) fetch(ctx context.Context, span trace.Span) (Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Dataset{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Dataset{}, fmt.Errorf("fetch adp: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Dataset{}, &StatusError{Code: resp.StatusCode, Text: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Dataset{}, fmt.Errorf("read adp body: %w", err)
	}
	rows, err := jsonutil.UnmarshalArray[Row](body, "decode adp payload")
	if err != nil {
		return Dataset{}, err
	}
	return NewDataset(rows), nil
}

// statusText extracts the reason phrase from resp.Status ("500 Internal
// Server Error"), falling back to the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = strconv.Itoa(resp.StatusCode)
	}
	return text
}
