package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Assistants manages assistants.
type Assistants struct {
	t *transport.Transport
}

func (a *Assistants) List(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return a.t.Get(ctx, "/assistants", params)
}

func (a *Assistants) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return a.t.Get(ctx, "/assistants/"+url.PathEscape(id), nil)
}

func (a *Assistants) Create(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return a.t.JSONPost(ctx, "/assistants", params)
}

func (a *Assistants) Modify(ctx context.Context, id string, params oaikit.Params) (*oaikit.Response, error) {
	return a.t.JSONPost(ctx, "/assistants/"+url.PathEscape(id), params)
}

func (a *Assistants) Delete(ctx context.Context, id string) (*oaikit.Response, error) {
	return a.t.Delete(ctx, "/assistants/"+url.PathEscape(id))
}
