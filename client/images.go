package client

import (
	"context"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Images generates and edits images.
type Images struct {
	t *transport.Transport
}

// Generate creates images from a prompt.
func (i *Images) Generate(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return i.t.JSONPost(ctx, "/images/generations", params)
}

// Edit edits params["image"] guided by a prompt and an optional
// params["mask"]. Both accept a path or any multipart file value.
func (i *Images) Edit(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	params, closeFiles, err := openPaths(params, "image", "mask")
	if err != nil {
		return nil, err
	}
	defer closeFiles()
	return i.t.MultipartPost(ctx, "/images/edits", params)
}

// Variations creates variations of params["image"].
func (i *Images) Variations(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	params, closeFiles, err := openPaths(params, "image")
	if err != nil {
		return nil, err
	}
	defer closeFiles()
	return i.t.MultipartPost(ctx, "/images/variations", params)
}
