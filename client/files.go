package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// FilePurposes are the purposes the service accepts for uploads.
var FilePurposes = []string{"assistants", "batch", "fine-tune", "vision"}

// Files manages uploaded files.
type Files struct {
	t *transport.Transport
}

// List returns the uploaded files, optionally filtered by params
// (e.g. "purpose").
func (f *Files) List(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/files", params)
}

// Upload sends params["file"] with params["purpose"]. The file may be a
// path, an *os.File, an io.Reader or an oaikit.File. A path ending in
// .jsonl is checked to hold one JSON value per line before upload.
func (f *Files) Upload(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	input, ok := params["file"]
	if !ok || input == nil {
		return nil, fmt.Errorf("%w: file is required", oaikit.ErrInvalidFile)
	}

	purpose, _ := params["purpose"].(string)
	if !slices.Contains(FilePurposes, purpose) {
		slog.WarnContext(ctx, "upload purpose is not one of the known purposes; the request may fail",
			"purpose", purpose, "known", FilePurposes)
	}

	if path, isPath := input.(string); isPath && strings.HasSuffix(path, ".jsonl") {
		if err := validateJSONLFile(path); err != nil {
			return nil, err
		}
	}

	params, closeFiles, err := openPaths(params, "file")
	if err != nil {
		return nil, err
	}
	defer closeFiles()

	return f.t.MultipartPost(ctx, "/files", params)
}

// Retrieve returns the metadata of one file.
func (f *Files) Retrieve(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/files/"+url.PathEscape(id), nil)
}

// Content returns the raw content of one file.
func (f *Files) Content(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.Get(ctx, "/files/"+url.PathEscape(id)+"/content", nil)
}

// Delete deletes one file.
func (f *Files) Delete(ctx context.Context, id string) (*oaikit.Response, error) {
	return f.t.Delete(ctx, "/files/"+url.PathEscape(id))
}

func validateJSONLFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", oaikit.ErrInvalidFile, err)
	}
	defer file.Close()
	return validateJSONL(file, path)
}

// validateJSONL checks that every non-blank line of r is valid JSON.
func validateJSONL(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return fmt.Errorf("%w: %v - found on line %d of %s", oaikit.ErrInvalidFile, err, line, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", oaikit.ErrInvalidFile, err)
	}
	return nil
}

// openPaths returns a copy of params in which string values of keys are
// replaced by the opened files. The returned func closes them.
func openPaths(params oaikit.Params, keys ...string) (oaikit.Params, func(), error) {
	out := params.Clone()
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, key := range keys {
		path, ok := out[key].(string)
		if !ok {
			continue
		}
		if path == "" {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %s path is empty", oaikit.ErrInvalidFile, key)
		}
		file, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %w", oaikit.ErrInvalidFile, err)
		}
		opened = append(opened, file)
		out[key] = file
	}
	return out, closeAll, nil
}
