// Package filestation provides a client for the File Station web API of
// Synology NAS appliances. Operations are described by a registry of
// endpoints and invoked by name; the client keeps the session cookie issued
// at login and turns error envelopes into typed errors.
package filestation

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/KarpelesLab/pjson"
	"github.com/google/uuid"
)

// Client talks to a single NAS. The session slot is safe for concurrent
// use, but a login racing other calls may see its cookie replaced by theirs.
type Client struct {
	cfg        Config
	base       *url.URL
	endpoints  map[string]Endpoint
	httpClient *http.Client
	sess       session
}

// New creates a client for cfg. The registry in cfg.Endpoints is used in
// place of DefaultRegistry when set.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("filestation: host is required")
	}
	if cfg.EndpointPath == "" {
		cfg.EndpointPath = DefaultEndpointPath
	}
	reg := cfg.Endpoints
	if reg == nil {
		reg = DefaultRegistry()
	}
	endpoints, err := Flatten(reg)
	if err != nil {
		return nil, fmt.Errorf("filestation: invalid registry: %w", err)
	}
	base, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("filestation: invalid base URL: %w", err)
	}

	return &Client{
		cfg:        cfg,
		base:       base,
		endpoints:  endpoints,
		httpClient: httpClientFor(cfg),
	}, nil
}

// Endpoint returns the endpoint behind a public operation name.
func (c *Client) Endpoint(op string) (Endpoint, bool) {
	ep, ok := c.endpoints[op]
	return ep, ok
}

// Operations lists the available operation names, sorted.
func (c *Client) Operations() []string {
	res := make([]string, 0, len(c.endpoints))
	for k := range c.endpoints {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func (c *Client) log() *slog.Logger {
	if c.cfg.Logger != nil {
		return c.cfg.Logger
	}
	return slog.Default()
}

// Do invokes the operation op and returns the parsed response. Error
// envelopes are returned as *Error, never as data.
func (c *Client) Do(ctx context.Context, op string, param Param) (*Response, error) {
	ep, ok := c.endpoints[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return c.execute(ctx, op, ep, buildParams(ep, param, c.sess.get(), c.cfg.UseCookies))
}

// Apply invokes op and decodes the data member of the response into target.
func (c *Client) Apply(ctx context.Context, op string, param Param, target any) error {
	res, err := c.Do(ctx, op, param)
	if err != nil {
		return err
	}
	err = res.ApplyContext(ctx, target)
	if c.cfg.Debug && err != nil {
		c.log().ErrorContext(ctx, fmt.Sprintf("failed to parse json: %s\n%s", err, res.Data), "event", "filestation:not_json")
	}
	return err
}

// As invokes op on c and returns the data member decoded as T.
func As[T any](ctx context.Context, c *Client, op string, param Param) (T, error) {
	var target T
	err := c.Apply(ctx, op, param, &target)
	return target, err
}

func (c *Client) endpointURL(ep Endpoint) *url.URL {
	p := strings.TrimSuffix(c.base.Path, "/") + "/" + strings.Trim(c.cfg.EndpointPath, "/")
	if ep.Path != "" {
		p += "/" + strings.TrimPrefix(ep.Path, "/")
	}
	return &url.URL{Scheme: c.base.Scheme, Host: c.base.Host, Path: p}
}

func (c *Client) execute(ctx context.Context, op string, ep Endpoint, param Param) (*Response, error) {
	u := c.endpointURL(ep)

	method := strings.ToUpper(ep.HttpMethod)
	var body []byte
	var contentType string

	switch method {
	case "", http.MethodGet:
		method = http.MethodGet
	case http.MethodPost:
		f, err := takeFile(param)
		if err != nil {
			return nil, err
		}
		boundary := newBoundary()
		body, err = multipartBody(param, f, boundary)
		if err != nil {
			return nil, err
		}
		contentType = "multipart/form-data; boundary=" + boundary
	default:
		return nil, fmt.Errorf("invalid request method %s", ep.HttpMethod)
	}

	q, err := encodeQuery(param)
	if err != nil {
		return nil, err
	}
	u.RawQuery = q.Encode()

	var rd io.Reader
	if body != nil {
		rd = c.progressReader(bytes.NewReader(body))
	}
	r, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		r.ContentLength = int64(len(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.Header.Set("Content-Type", contentType)
	}
	if sid := c.sess.get(); sid != "" {
		r.Header.Set("Cookie", sid)
	}

	t := time.Now()

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s query: %w", op, err)
	}
	defer resp.Body.Close()

	if c.sess.update(resp) && c.cfg.Debug {
		c.log().DebugContext(ctx, "session updated", "event", "filestation:session", "filestation:op", op)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cfg.Debug {
		d := time.Since(t)
		c.log().DebugContext(ctx, fmt.Sprintf("[filestation] %s %s => %s", method, op, d),
			"event", "filestation:debug_query",
			"filestation:request_id", uuid.New().String(),
			"filestation:op", op,
			"filestation:api", ep.Api,
			"filestation:status", resp.StatusCode,
			"filestation:duration", d)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HttpError{Code: resp.StatusCode, Status: statusText(resp), Body: data}
	}

	if ep.Method == "download" {
		data, err = downloadEnvelope(data, resp.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
	}

	result := &Response{}
	if err := result.parse(ctx, data); err != nil {
		if c.cfg.Debug {
			c.log().ErrorContext(ctx, fmt.Sprintf("failed to parse json: %s\n%s", err, data), "event", "filestation:not_json")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if result.Error != nil {
		return nil, c.apiError(result.Error, ep.Api)
	}
	return result, nil
}

func (c *Client) apiError(info *ErrorInfo, api string) *Error {
	var e *Error
	if c.cfg.ParseErrors {
		e = NewError(info.Code, api)
	} else {
		e = &Error{Code: info.Code, Api: api, Message: "API error"}
	}
	e.Details = info.Errors
	return e
}

// downloadEnvelope wraps raw file content so downloads parse like any other
// response.
func downloadEnvelope(data []byte, contentType string) ([]byte, error) {
	return pjson.Marshal(map[string]any{
		"body":         base64.StdEncoding.EncodeToString(data),
		"content_type": contentType,
		"success":      true,
	})
}

func statusText(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if s, ok := strings.CutPrefix(resp.Status, prefix); ok {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
