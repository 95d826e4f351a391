package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBaseURL is the public character collection.
const DefaultBaseURL = "https://rickandmortyapi.com/api/character"

const tracerName = "github.com/jask/charbrowser/internal/api"

// Fetcher retrieves one page of characters from an absolute URL.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (Page, error)
}

// Client issues GET requests against the character endpoint.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a client. A zero timeout leaves requests unbounded.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// Fetch performs exactly one GET. Any transport error, non-2xx status or
// undecodable body is returned as a *FetchFailure.
func (c *Client) Fetch(ctx context.Context, pageURL string) (Page, error) {
	reqID := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "api.Fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.url", pageURL),
		attribute.String("request.id", reqID),
	)

	start := time.Now()
	page, status, err := c.do(ctx, pageURL, reqID)
	log.Printf("fetch id=%s url=%s status=%d dur=%s err=%v", reqID, pageURL, status, time.Since(start).Round(time.Millisecond), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Page{}, err
	}
	span.SetAttributes(attribute.Int("results", len(page.Results)))
	return page, nil
}

func (c *Client) do(ctx context.Context, pageURL, reqID string) (Page, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Page{}, 0, &FetchFailure{URL: pageURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Page{}, 0, &FetchFailure{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Page{}, resp.StatusCode, &FetchFailure{URL: pageURL, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Page{}, resp.StatusCode, &FetchFailure{URL: pageURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return env.page(), resp.StatusCode, nil
}

// PageURL returns base with its page query parameter set to n.
func PageURL(base string, n int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(n))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
