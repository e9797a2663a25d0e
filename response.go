package oaikit

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Params are request parameters. JSON requests marshal them as the body;
// GET requests send them as the query string; multipart requests turn
// io.Reader and File values into file parts.
type Params map[string]any

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Response is a successful reply from the service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Object decodes the body as a JSON object.
func (r *Response) Object() (map[string]any, error) {
	var out map[string]any
	if err := r.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// RequestID returns the x-request-id header set by the service.
func (r *Response) RequestID() string {
	return r.Header.Get("X-Request-Id")
}
