package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spetersoncode/oaikit"
)

// Get sends a GET request with params as the query string.
func (t *Transport) Get(ctx context.Context, path string, params oaikit.Params) (*oaikit.Response, error) {
	return t.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: queryValues(params)})
}

// JSONPost sends params as a JSON object. Nil params send an empty object.
func (t *Transport) JSONPost(ctx context.Context, path string, params oaikit.Params) (*oaikit.Response, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}
	return t.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		ContentType: "application/json",
		Body:        body,
	})
}

// Stream sends params as a JSON object with "stream" set and hands every
// event to fn. An error status fails before fn is called.
func (t *Transport) Stream(ctx context.Context, path string, params oaikit.Params, fn StreamFunc) (*oaikit.Response, error) {
	if fn == nil {
		return nil, fmt.Errorf("stream %s: nil stream func", path)
	}
	params = params.Clone()
	params["stream"] = true
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}
	return t.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		ContentType: "application/json",
		Body:        body,
		Stream:      fn,
	})
}

// MultipartPost sends params as multipart/form-data. File, io.Reader and
// *os.File values become file parts; []string values repeat as "key[]";
// everything else is sent as its fmt.Sprint form.
func (t *Transport) MultipartPost(ctx context.Context, path string, params oaikit.Params) (*oaikit.Response, error) {
	body, contentType, err := multipartBody(params)
	if err != nil {
		return nil, err
	}
	return t.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		ContentType: contentType,
		Body:        body,
	})
}

// Delete sends a DELETE request.
func (t *Transport) Delete(ctx context.Context, path string) (*oaikit.Response, error) {
	return t.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func jsonBody(params oaikit.Params) ([]byte, error) {
	if params == nil {
		params = oaikit.Params{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return body, nil
}

func queryValues(params oaikit.Params) url.Values {
	if len(params) == 0 {
		return nil
	}
	q := url.Values{}
	for k, v := range params {
		switch val := v.(type) {
		case nil:
		case []string:
			for _, s := range val {
				q.Add(k, s)
			}
		default:
			q.Set(k, fmt.Sprint(val))
		}
	}
	return q
}

func multipartBody(params oaikit.Params) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if err := writePart(w, key, params[key]); err != nil {
			return nil, "", fmt.Errorf("multipart field %q: %w", key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writePart(w *multipart.Writer, key string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case oaikit.File:
		return writeFilePart(w, key, v)
	case *oaikit.File:
		return writeFilePart(w, key, *v)
	case *os.File:
		return writeFilePart(w, key, oaikit.File{Name: filepath.Base(v.Name()), Reader: v})
	case io.Reader:
		return writeFilePart(w, key, oaikit.File{Name: key, Reader: v})
	case []string:
		for _, s := range v {
			if err := w.WriteField(key+"[]", s); err != nil {
				return err
			}
		}
		return nil
	default:
		return w.WriteField(key, fmt.Sprint(v))
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, key string, f oaikit.File) error {
	if f.Reader == nil {
		return fmt.Errorf("%w: no content", oaikit.ErrInvalidFile)
	}
	name := f.Name
	if name == "" {
		name = key
	}
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(key), quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f.Reader)
	return err
}
