package client

import (
	"context"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Audio transcribes, translates and synthesizes speech.
type Audio struct {
	t *transport.Transport
}

// Transcribe turns params["file"] into text in its own language.
func (a *Audio) Transcribe(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return a.multipart(ctx, "/audio/transcriptions", params)
}

// Translate turns params["file"] into English text.
func (a *Audio) Translate(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return a.multipart(ctx, "/audio/translations", params)
}

// Speech synthesizes audio. The response body holds the raw audio bytes.
func (a *Audio) Speech(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return a.t.JSONPost(ctx, "/audio/speech", params)
}

func (a *Audio) multipart(ctx context.Context, path string, params oaikit.Params) (*oaikit.Response, error) {
	params, closeFiles, err := openPaths(params, "file")
	if err != nil {
		return nil, err
	}
	defer closeFiles()
	return a.t.MultipartPost(ctx, path, params)
}
