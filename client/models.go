package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Models lists and manages models.
type Models struct {
	t *transport.Transport
}

// List returns the available models.
func (m *Models) List(ctx context.Context) (*oaikit.Response, error) {
	return m.t.Get(ctx, "/models", nil)
}

// Retrieve returns one model.
func (m *Models) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return m.t.Get(ctx, "/models/"+url.PathEscape(id), nil)
}

// Delete deletes a fine-tuned model.
func (m *Models) Delete(ctx context.Context, id string) (*oaikit.Response, error) {
	return m.t.Delete(ctx, "/models/"+url.PathEscape(id))
}
