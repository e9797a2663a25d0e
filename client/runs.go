package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Runs executes assistants on threads.
type Runs struct {
	t *transport.Transport
}

func (r *Runs) List(ctx context.Context, threadID string, params oaikit.Params) (*oaikit.Response, error) {
	return r.t.Get(ctx, threadPath(threadID)+"/runs", params)
}

func (r *Runs) Retrieve(ctx context.Context, threadID, id string) (*oaikit.Response, error) {
	return r.t.Get(ctx, runPath(threadID, id), nil)
}

// Create starts a run. Use CreateStream for streamed runs.
func (r *Runs) Create(ctx context.Context, threadID string, params oaikit.Params) (*oaikit.Response, error) {
	return r.t.JSONPost(ctx, threadPath(threadID)+"/runs", params)
}

// CreateStream starts a run and streams its events to fn.
func (r *Runs) CreateStream(ctx context.Context, threadID string, params oaikit.Params, fn transport.StreamFunc) error {
	_, err := r.t.Stream(ctx, threadPath(threadID)+"/runs", params, fn)
	return err
}

func (r *Runs) Modify(ctx context.Context, threadID, id string, params oaikit.Params) (*oaikit.Response, error) {
	return r.t.JSONPost(ctx, runPath(threadID, id), params)
}

func (r *Runs) Cancel(ctx context.Context, threadID, id string) (*oaikit.Response, error) {
	return r.t.JSONPost(ctx, runPath(threadID, id)+"/cancel", nil)
}

// CreateThreadAndRun creates a thread and starts a run on it in one request.
func (r *Runs) CreateThreadAndRun(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return r.t.JSONPost(ctx, "/threads/runs", params)
}

// SubmitToolOutputs resumes a run waiting on tool calls.
func (r *Runs) SubmitToolOutputs(ctx context.Context, threadID, runID string, params oaikit.Params) (*oaikit.Response, error) {
	return r.t.JSONPost(ctx, runPath(threadID, runID)+"/submit_tool_outputs", params)
}

func runPath(threadID, id string) string {
	return threadPath(threadID) + "/runs/" + url.PathEscape(id)
}
