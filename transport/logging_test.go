package transport

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/spetersoncode/oaikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingHandler(err error) Handler {
	return func(context.Context, *Request) (*oaikit.Response, error) {
		return nil, err
	}
}

func TestErrorLogging(t *testing.T) {
	req := &Request{Method: http.MethodPost, Path: "/chat/completions"}

	t.Run("logs structured error bodies", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		apiErr := oaikit.NewAPIError(req.Method, req.Path, http.StatusBadRequest, nil,
			[]byte(`{"error":{"message":"bad model"}}`))

		_, err := ErrorLogging(logger)(failingHandler(apiErr))(context.Background(), req)

		assert.Same(t, apiErr, err)
		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, ErrorLogMessage)
		assert.Contains(t, out, "bad model")
		assert.Contains(t, out, "status=400")
	})

	t.Run("does not log unstructured bodies", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		apiErr := oaikit.NewAPIError(req.Method, req.Path, http.StatusBadGateway, nil, []byte("<html>"))

		_, err := ErrorLogging(logger)(failingHandler(apiErr))(context.Background(), req)

		assert.Same(t, apiErr, err)
		assert.Empty(t, buf.String())
	})

	t.Run("does not log non-api errors", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		connErr := errors.New("connection refused")

		_, err := ErrorLogging(logger)(failingHandler(connErr))(context.Background(), req)

		assert.Equal(t, connErr, err)
		assert.Empty(t, buf.String())
	})

	t.Run("passes successful responses through", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &oaikit.Response{StatusCode: http.StatusOK}

		got, err := ErrorLogging(logger)(func(context.Context, *Request) (*oaikit.Response, error) {
			return want, nil
		})(context.Background(), req)

		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Empty(t, buf.String())
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		apiErr := oaikit.NewAPIError(req.Method, req.Path, http.StatusBadRequest, nil, []byte(`{}`))
		_, err := ErrorLogging(nil)(failingHandler(apiErr))(context.Background(), req)
		assert.Same(t, apiErr, err)
	})
}

func TestTransportInstallsErrorLogging(t *testing.T) {
	srv := newStatusServer(t, http.StatusUnauthorized, `{"error":{"message":"invalid key"}}`)

	t.Run("enabled", func(t *testing.T) {
		var buf bytes.Buffer
		s := standardSettings(srv.URL)
		s.LogErrors = true
		tr := New(s, func(st *Stack) { st.Logger = slog.New(slog.NewTextHandler(&buf, nil)) })

		_, err := tr.Get(context.Background(), "/models", nil)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "invalid key")
	})

	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer
		tr := New(standardSettings(srv.URL), func(st *Stack) { st.Logger = slog.New(slog.NewTextHandler(&buf, nil)) })

		_, err := tr.Get(context.Background(), "/models", nil)
		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
