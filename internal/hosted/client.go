// Package hosted talks to the hosted backend-as-a-service over its REST
// surface: the auth API for accounts and sessions and the table API for
// rows. Client implements identity.Provider and store.Store.
package hosted

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultTimeout = 10 * time.Second

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     logging.Logger
	now     func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l.With("module", "hosted") }
}

// New returns a client for the project at baseURL authenticating with the
// project's anon key.
func New(baseURL, key string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     logging.NewNop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload any, hdr http.Header) (*response, error) {
	ctx, span := telemetry.Tracer("hosted").Start(ctx, "hosted."+op)
	defer span.End()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set(common.APIKeyHeaderName, c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	span.SetAttributes(attribute.String("http.method", method), attribute.String("http.path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.log.Warn(ctx, "request failed", "op", op, "error", err)
		return nil, fmt.Errorf("%w: %w", identity.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: read %s response: %w", identity.ErrUnavailable, op, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	c.log.Debug(ctx, "request done", "op", op, "status", resp.StatusCode)
	return &response{status: resp.StatusCode, body: data}, nil
}

// errorBody covers the shapes the auth and table APIs use for failures.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (c *Client) providerError(r *response) error {
	var eb errorBody
	_ = json.Unmarshal(r.body, &eb)

	msg := firstNonEmpty(eb.Msg, eb.Message, eb.ErrorDescription, eb.Error)
	if msg == "" {
		msg = http.StatusText(r.status)
	}
	pe := &identity.ProviderError{Status: r.status, Message: msg}
	if r.status >= 500 {
		return fmt.Errorf("%w: %w", identity.ErrUnavailable, pe)
	}
	return pe
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Ping checks that the auth API answers.
func (c *Client) Ping(ctx context.Context) error {
	r, err := c.do(ctx, "ping", http.MethodGet, "/auth/v1/health", nil, nil, nil)
	if err != nil {
		return err
	}
	if !r.ok() {
		return c.providerError(r)
	}
	return nil
}

var errUnexpectedBody = errors.New("unexpected response body")

func decodeJSON(r *response, v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %w", errUnexpectedBody, err)
	}
	return nil
}

func limitQuery(limit int) string {
	return strconv.Itoa(limit)
}
