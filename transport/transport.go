package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/internal/retry"
)

// MaxResponseBodySize caps how much of a response body is read.
const MaxResponseBodySize = 100 * 1024 * 1024 // 100 MB

// Settings is what the transport needs from a resolved client configuration.
type Settings struct {
	APIType        oaikit.APIType
	APIVersion     string
	URIBase        string
	OrganizationID string
	Credential     oaikit.Credential
	ExtraHeaders   map[string]string
	RequestTimeout time.Duration
	LogErrors      bool
}

// Request describes one call to the service. Path is relative to the
// resolved base URI.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// ContentType and Body are sent as is; Body is replayed on retries.
	ContentType string
	Body        []byte

	// Stream, when set, receives every server-sent event of a successful
	// response and the returned Response has no body.
	Stream StreamFunc
}

// Transport executes requests against the service. It is safe for
// concurrent use.
type Transport struct {
	settings Settings
	stack    Stack
	handler  Handler
}

// New builds a Transport. Customizers run in order on a default Stack.
func New(settings Settings, customize ...func(*Stack)) *Transport {
	settings.ExtraHeaders = maps.Clone(settings.ExtraHeaders)

	stack := defaultStack()
	for _, fn := range customize {
		if fn != nil {
			fn(&stack)
		}
	}
	if stack.HTTPClient == nil {
		stack.HTTPClient = &http.Client{}
	}

	t := &Transport{settings: settings, stack: stack}

	var interceptors []Interceptor
	if settings.LogErrors {
		interceptors = append(interceptors, ErrorLogging(stack.Logger))
	}
	if stack.Events != nil {
		interceptors = append(interceptors, eventInterceptor(stack.Events))
	}
	interceptors = append(interceptors, stack.interceptors...)
	t.handler = chain(t.sendWithRetry, interceptors...)
	return t
}

// Settings returns a copy of the transport's settings.
func (t *Transport) Settings() Settings {
	s := t.settings
	s.ExtraHeaders = maps.Clone(s.ExtraHeaders)
	return s
}

// Do runs req through the interceptor chain.
func (t *Transport) Do(ctx context.Context, req *Request) (*oaikit.Response, error) {
	return t.handler(ctx, req)
}

func (t *Transport) sendWithRetry(ctx context.Context, req *Request) (*oaikit.Response, error) {
	if !t.stack.Retry.Enabled() {
		return t.send(ctx, req)
	}

	var retryEvents chan retry.Event
	if t.stack.Events != nil {
		retryEvents = make(chan retry.Event, 10)
		go forwardRetryEvents(t.stack.Events, retryEvents, req)
		defer close(retryEvents)
	}

	cfg := t.stack.Retry
	if req.Stream != nil {
		cfg.ShouldRetry = streamRetryable(cfg.ShouldRetry)
	}

	return retry.DoWithEvents(ctx, cfg, retryEvents, func() (*oaikit.Response, error) {
		return t.send(ctx, req)
	})
}

// streamRetryable wraps a retry classifier so that a *StreamError is never
// retried.
func streamRetryable(next func(error) bool) func(error) bool {
	if next == nil {
		next = retry.IsTransient
	}
	return func(err error) bool {
		var se *StreamError
		if errors.As(err, &se) {
			return false
		}
		return next(err)
	}
}

func (t *Transport) send(ctx context.Context, req *Request) (*oaikit.Response, error) {
	if t.settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.settings.RequestTimeout)
		defer cancel()
	}

	target, err := t.URI(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	header, err := t.Headers(ctx)
	if err != nil {
		return nil, err
	}
	if req.ContentType != "" {
		header.Set("Content-Type", req.ContentType)
	}
	if req.Stream != nil {
		header.Set("Accept", "text/event-stream")
	}
	httpReq.Header = header

	resp, err := t.stack.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, readErr := readBody(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("read error response: %w", readErr)
		}
		return nil, oaikit.NewAPIError(req.Method, req.Path, resp.StatusCode, resp.Header, raw)
	}

	if req.Stream != nil {
		if err := decodeStream(resp, req.Stream); err != nil {
			return nil, err
		}
		return &oaikit.Response{StatusCode: resp.StatusCode, Header: resp.Header}, nil
	}

	raw, err := readBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &oaikit.Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}, nil
}

// URI returns the absolute URL for path. The standard family nests paths
// under the API version unless the base already contains it; Azure appends
// the version as the api-version query parameter.
func (t *Transport) URI(path string, query url.Values) (string, error) {
	base := strings.TrimRight(t.settings.URIBase, "/")
	path = "/" + strings.TrimLeft(path, "/")
	version := t.settings.APIVersion

	var raw string
	switch {
	case t.settings.APIType.IsAzure():
		raw = base + path
	case version == "" || strings.Contains(base, version):
		raw = base + path
	default:
		raw = base + "/" + version + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid uri %q: %w", raw, err)
	}
	q := u.Query()
	if t.settings.APIType.IsAzure() && version != "" {
		q.Set("api-version", version)
	}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Headers returns the headers sent with every request. Token providers are
// invoked here, once per request.
func (t *Transport) Headers(ctx context.Context) (http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", t.stack.UserAgent)
	h.Set("X-Client-Request-Id", uuid.NewString())

	if cred := t.settings.Credential; cred != nil {
		token, err := cred.Token(ctx)
		if err != nil {
			return nil, err
		}
		switch {
		case t.settings.APIType.IsAzure() && !oaikit.IsProvider(cred):
			h.Set("api-key", token)
		default:
			h.Set("Authorization", "Bearer "+token)
		}
	}
	if !t.settings.APIType.IsAzure() && t.settings.OrganizationID != "" {
		h.Set("OpenAI-Organization", t.settings.OrganizationID)
	}

	for k, v := range t.settings.ExtraHeaders {
		h.Set(k, v)
	}
	return h, nil
}

// readBody reads a response body with a size limit to prevent memory exhaustion.
func readBody(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxResponseBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes limit", MaxResponseBodySize)
	}
	return data, nil
}
