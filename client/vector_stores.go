package client

import (
	"context"
	"net/url"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// VectorStores manages vector stores used by file search.
type VectorStores struct {
	t *transport.Transport
}

func (v *VectorStores) List(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.Get(ctx, "/vector_stores", params)
}

func (v *VectorStores) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return v.t.Get(ctx, vectorStorePath(id), nil)
}

func (v *VectorStores) Create(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.JSONPost(ctx, "/vector_stores", params)
}

func (v *VectorStores) Modify(ctx context.Context, id string, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.JSONPost(ctx, vectorStorePath(id), params)
}

func (v *VectorStores) Delete(ctx context.Context, id string) (*oaikit.Response, error) {
	return v.t.Delete(ctx, vectorStorePath(id))
}

func vectorStorePath(id string) string {
	return "/vector_stores/" + url.PathEscape(id)
}

// VectorStoreFiles manages the files attached to a vector store.
type VectorStoreFiles struct {
	t *transport.Transport
}

func (v *VectorStoreFiles) List(ctx context.Context, vectorStoreID string, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.Get(ctx, vectorStorePath(vectorStoreID)+"/files", params)
}

func (v *VectorStoreFiles) Retrieve(ctx context.Context, vectorStoreID, id string) (*oaikit.Response, error) {
	return v.t.Get(ctx, vectorStorePath(vectorStoreID)+"/files/"+url.PathEscape(id), nil)
}

// Create attaches an uploaded file (params["file_id"]) to the store.
func (v *VectorStoreFiles) Create(ctx context.Context, vectorStoreID string, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.JSONPost(ctx, vectorStorePath(vectorStoreID)+"/files", params)
}

// Delete detaches a file from the store. The file itself is kept.
func (v *VectorStoreFiles) Delete(ctx context.Context, vectorStoreID, id string) (*oaikit.Response, error) {
	return v.t.Delete(ctx, vectorStorePath(vectorStoreID)+"/files/"+url.PathEscape(id))
}

// VectorStoreFileBatches attaches many files to a vector store at once.
type VectorStoreFileBatches struct {
	t *transport.Transport
}

func (v *VectorStoreFileBatches) Create(ctx context.Context, vectorStoreID string, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.JSONPost(ctx, vectorStorePath(vectorStoreID)+"/file_batches", params)
}

func (v *VectorStoreFileBatches) Retrieve(ctx context.Context, vectorStoreID, id string) (*oaikit.Response, error) {
	return v.t.Get(ctx, fileBatchPath(vectorStoreID, id), nil)
}

func (v *VectorStoreFileBatches) Cancel(ctx context.Context, vectorStoreID, id string) (*oaikit.Response, error) {
	return v.t.JSONPost(ctx, fileBatchPath(vectorStoreID, id)+"/cancel", nil)
}

// List returns the files of one batch.
func (v *VectorStoreFileBatches) List(ctx context.Context, vectorStoreID, id string, params oaikit.Params) (*oaikit.Response, error) {
	return v.t.Get(ctx, fileBatchPath(vectorStoreID, id)+"/files", params)
}

func fileBatchPath(vectorStoreID, id string) string {
	return vectorStorePath(vectorStoreID) + "/file_batches/" + url.PathEscape(id)
}
