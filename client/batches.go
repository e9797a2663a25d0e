package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Batches manages asynchronous request batches.
type Batches struct {
	t *transport.Transport
}

func (b *Batches) List(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return b.t.Get(ctx, "/batches", params)
}

func (b *Batches) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return b.t.Get(ctx, "/batches/"+url.PathEscape(id), nil)
}

// Create starts a batch over an uploaded input file.
func (b *Batches) Create(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return b.t.JSONPost(ctx, "/batches", params)
}

func (b *Batches) Cancel(ctx context.Context, id string) (*oaikit.Response, error) {
	return b.t.JSONPost(ctx, "/batches/"+url.PathEscape(id)+"/cancel", nil)
}
