package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Threads manages conversation threads.
type Threads struct {
	t *transport.Transport
}

func (th *Threads) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return th.t.Get(ctx, threadPath(id), nil)
}

// Create starts a thread, optionally seeded with params["messages"].
func (th *Threads) Create(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return th.t.JSONPost(ctx, "/threads", params)
}

func (th *Threads) Modify(ctx context.Context, id string, params oaikit.Params) (*oaikit.Response, error) {
	return th.t.JSONPost(ctx, threadPath(id), params)
}

func (th *Threads) Delete(ctx context.Context, id string) (*oaikit.Response, error) {
	return th.t.Delete(ctx, threadPath(id))
}

func threadPath(id string) string {
	return "/threads/" + url.PathEscape(id)
}
