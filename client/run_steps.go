package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// RunSteps lists the steps of a run.
type RunSteps struct {
	t *transport.Transport
}

func (s *RunSteps) List(ctx context.Context, threadID, runID string, params oaikit.Params) (*oaikit.Response, error) {
	return s.t.Get(ctx, runPath(threadID, runID)+"/steps", params)
}

func (s *RunSteps) Retrieve(ctx context.Context, threadID, runID, id string) (*oaikit.Response, error) {
	return s.t.Get(ctx, runPath(threadID, runID)+"/steps/"+url.PathEscape(id), nil)
}
