package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Finetunes manages fine-tuning jobs.
type Finetunes struct {
	t *transport.Transport
}

// List returns fine-tuning jobs.
func (f *Finetunes) List(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/fine_tuning/jobs", params)
}

// Create starts a fine-tuning job.
func (f *Finetunes) Create(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return f.t.JSONPost(ctx, "/fine_tuning/jobs", params)
}

// Retrieve returns one job.
func (f *Finetunes) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/fine_tuning/jobs/"+url.PathEscape(id), nil)
}

// Cancel cancels a running job.
func (f *Finetunes) Cancel(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.JSONPost(ctx, "/fine_tuning/jobs/"+url.PathEscape(id)+"/cancel", nil)
}

// ListEvents returns status updates of one job.
func (f *Finetunes) ListEvents(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/fine_tuning/jobs/"+url.PathEscape(id)+"/events", nil)
}
