package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Messages manages the messages of a thread.
type Messages struct {
	t *transport.Transport
}

func (m *Messages) List(ctx context.Context, threadID string, params oaikit.Params) (*oaikit.Response, error) {
	return m.t.Get(ctx, threadPath(threadID)+"/messages", params)
}

func (m *Messages) Retrieve(ctx context.Context, threadID, id string) (*oaikit.Response, error) {
	return m.t.Get(ctx, messagePath(threadID, id), nil)
}

func (m *Messages) Create(ctx context.Context, threadID string, params oaikit.Params) (*oaikit.Response, error) {
	return m.t.JSONPost(ctx, threadPath(threadID)+"/messages", params)
}

func (m *Messages) Modify(ctx context.Context, threadID, id string, params oaikit.Params) (*oaikit.Response, error) {
	return m.t.JSONPost(ctx, messagePath(threadID, id), params)
}

func (m *Messages) Delete(ctx context.Context, threadID, id string) (*oaikit.Response, error) {
	return m.t.Delete(ctx, messagePath(threadID, id))
}

func messagePath(threadID, id string) string {
	return threadPath(threadID) + "/messages/" + url.PathEscape(id)
}
