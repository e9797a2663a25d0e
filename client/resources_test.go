package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spetersoncode/oaikit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Beta   string
	Type   string
	Body   string
}

func newRecordingClient(t *testing.T, opts ...Option) (*Client, *[]recordedRequest) {
	t.Helper()
	var got []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Beta:   r.Header.Get(BetaHeader),
			Type:   r.Header.Get("Content-Type"),
			Body:   string(body),
		})
		_, _ = w.Write([]byte(`{"object":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	return newTestClient(t, append([]Option{WithURIBase(srv.URL)}, opts...)...), &got
}

func TestResourceRoutes(t *testing.T) {
	ctx := context.Background()
	p := oaikit.Params{"name": "x"}

	tests := []struct {
		name   string
		call   func(c *Client) (*oaikit.Response, error)
		method string
		path   string
		beta   bool
	}{
		{"files list", func(c *Client) (*oaikit.Response, error) { return c.Files().List(ctx, nil) }, "GET", "/v1/files", false},
		{"files retrieve", func(c *Client) (*oaikit.Response, error) { return c.Files().Retrieve(ctx, "file-1") }, "GET", "/v1/files/file-1", false},
		{"files content", func(c *Client) (*oaikit.Response, error) { return c.Files().Content(ctx, "file-1") }, "GET", "/v1/files/file-1/content", false},
		{"files delete", func(c *Client) (*oaikit.Response, error) { return c.Files().Delete(ctx, "file-1") }, "DELETE", "/v1/files/file-1", false},

		{"finetunes list", func(c *Client) (*oaikit.Response, error) { return c.Finetunes().List(ctx, nil) }, "GET", "/v1/fine_tuning/jobs", false},
		{"finetunes create", func(c *Client) (*oaikit.Response, error) { return c.Finetunes().Create(ctx, p) }, "POST", "/v1/fine_tuning/jobs", false},
		{"finetunes retrieve", func(c *Client) (*oaikit.Response, error) { return c.Finetunes().Retrieve(ctx, "ft-1") }, "GET", "/v1/fine_tuning/jobs/ft-1", false},
		{"finetunes cancel", func(c *Client) (*oaikit.Response, error) { return c.Finetunes().Cancel(ctx, "ft-1") }, "POST", "/v1/fine_tuning/jobs/ft-1/cancel", false},
		{"finetunes events", func(c *Client) (*oaikit.Response, error) { return c.Finetunes().ListEvents(ctx, "ft-1") }, "GET", "/v1/fine_tuning/jobs/ft-1/events", false},

		{"images generate", func(c *Client) (*oaikit.Response, error) { return c.Images().Generate(ctx, p) }, "POST", "/v1/images/generations", false},

		{"models list", func(c *Client) (*oaikit.Response, error) { return c.Models().List(ctx) }, "GET", "/v1/models", false},
		{"models retrieve", func(c *Client) (*oaikit.Response, error) { return c.Models().Retrieve(ctx, "gpt-4o") }, "GET", "/v1/models/gpt-4o", false},
		{"models delete", func(c *Client) (*oaikit.Response, error) { return c.Models().Delete(ctx, "ft:gpt") }, "DELETE", "/v1/models/ft:gpt", false},

		{"audio speech", func(c *Client) (*oaikit.Response, error) { return c.Audio().Speech(ctx, p) }, "POST", "/v1/audio/speech", false},

		{"batches list", func(c *Client) (*oaikit.Response, error) { return c.Batches().List(ctx, nil) }, "GET", "/v1/batches", false},
		{"batches retrieve", func(c *Client) (*oaikit.Response, error) { return c.Batches().Retrieve(ctx, "b-1") }, "GET", "/v1/batches/b-1", false},
		{"batches create", func(c *Client) (*oaikit.Response, error) { return c.Batches().Create(ctx, p) }, "POST", "/v1/batches", false},
		{"batches cancel", func(c *Client) (*oaikit.Response, error) { return c.Batches().Cancel(ctx, "b-1") }, "POST", "/v1/batches/b-1/cancel", false},

		{"assistants list", func(c *Client) (*oaikit.Response, error) { return c.Assistants().List(ctx, nil) }, "GET", "/v1/assistants", true},
		{"assistants retrieve", func(c *Client) (*oaikit.Response, error) { return c.Assistants().Retrieve(ctx, "asst-1") }, "GET", "/v1/assistants/asst-1", true},
		{"assistants create", func(c *Client) (*oaikit.Response, error) { return c.Assistants().Create(ctx, p) }, "POST", "/v1/assistants", true},
		{"assistants modify", func(c *Client) (*oaikit.Response, error) { return c.Assistants().Modify(ctx, "asst-1", p) }, "POST", "/v1/assistants/asst-1", true},
		{"assistants delete", func(c *Client) (*oaikit.Response, error) { return c.Assistants().Delete(ctx, "asst-1") }, "DELETE", "/v1/assistants/asst-1", true},

		{"threads retrieve", func(c *Client) (*oaikit.Response, error) { return c.Threads().Retrieve(ctx, "th-1") }, "GET", "/v1/threads/th-1", true},
		{"threads create", func(c *Client) (*oaikit.Response, error) { return c.Threads().Create(ctx, nil) }, "POST", "/v1/threads", true},
		{"threads modify", func(c *Client) (*oaikit.Response, error) { return c.Threads().Modify(ctx, "th-1", p) }, "POST", "/v1/threads/th-1", true},
		{"threads delete", func(c *Client) (*oaikit.Response, error) { return c.Threads().Delete(ctx, "th-1") }, "DELETE", "/v1/threads/th-1", true},

		{"messages list", func(c *Client) (*oaikit.Response, error) { return c.Messages().List(ctx, "th-1", nil) }, "GET", "/v1/threads/th-1/messages", true},
		{"messages retrieve", func(c *Client) (*oaikit.Response, error) { return c.Messages().Retrieve(ctx, "th-1", "msg-1") }, "GET", "/v1/threads/th-1/messages/msg-1", true},
		{"messages create", func(c *Client) (*oaikit.Response, error) { return c.Messages().Create(ctx, "th-1", p) }, "POST", "/v1/threads/th-1/messages", true},
		{"messages modify", func(c *Client) (*oaikit.Response, error) { return c.Messages().Modify(ctx, "th-1", "msg-1", p) }, "POST", "/v1/threads/th-1/messages/msg-1", true},
		{"messages delete", func(c *Client) (*oaikit.Response, error) { return c.Messages().Delete(ctx, "th-1", "msg-1") }, "DELETE", "/v1/threads/th-1/messages/msg-1", true},

		{"runs list", func(c *Client) (*oaikit.Response, error) { return c.Runs().List(ctx, "th-1", nil) }, "GET", "/v1/threads/th-1/runs", true},
		{"runs retrieve", func(c *Client) (*oaikit.Response, error) { return c.Runs().Retrieve(ctx, "th-1", "run-1") }, "GET", "/v1/threads/th-1/runs/run-1", true},
		{"runs create", func(c *Client) (*oaikit.Response, error) { return c.Runs().Create(ctx, "th-1", p) }, "POST", "/v1/threads/th-1/runs", true},
		{"runs modify", func(c *Client) (*oaikit.Response, error) { return c.Runs().Modify(ctx, "th-1", "run-1", p) }, "POST", "/v1/threads/th-1/runs/run-1", true},
		{"runs cancel", func(c *Client) (*oaikit.Response, error) { return c.Runs().Cancel(ctx, "th-1", "run-1") }, "POST", "/v1/threads/th-1/runs/run-1/cancel", true},
		{"runs create thread and run", func(c *Client) (*oaikit.Response, error) { return c.Runs().CreateThreadAndRun(ctx, p) }, "POST", "/v1/threads/runs", true},
		{"runs submit tool outputs", func(c *Client) (*oaikit.Response, error) {
			return c.Runs().SubmitToolOutputs(ctx, "th-1", "run-1", p)
		}, "POST", "/v1/threads/th-1/runs/run-1/submit_tool_outputs", true},

		{"run steps list", func(c *Client) (*oaikit.Response, error) { return c.RunSteps().List(ctx, "th-1", "run-1", nil) }, "GET", "/v1/threads/th-1/runs/run-1/steps", true},
		{"run steps retrieve", func(c *Client) (*oaikit.Response, error) {
			return c.RunSteps().Retrieve(ctx, "th-1", "run-1", "step-1")
		}, "GET", "/v1/threads/th-1/runs/run-1/steps/step-1", true},

		{"vector stores list", func(c *Client) (*oaikit.Response, error) { return c.VectorStores().List(ctx, nil) }, "GET", "/v1/vector_stores", true},
		{"vector stores retrieve", func(c *Client) (*oaikit.Response, error) { return c.VectorStores().Retrieve(ctx, "vs-1") }, "GET", "/v1/vector_stores/vs-1", true},
		{"vector stores create", func(c *Client) (*oaikit.Response, error) { return c.VectorStores().Create(ctx, p) }, "POST", "/v1/vector_stores", true},
		{"vector stores modify", func(c *Client) (*oaikit.Response, error) { return c.VectorStores().Modify(ctx, "vs-1", p) }, "POST", "/v1/vector_stores/vs-1", true},
		{"vector stores delete", func(c *Client) (*oaikit.Response, error) { return c.VectorStores().Delete(ctx, "vs-1") }, "DELETE", "/v1/vector_stores/vs-1", true},

		{"vector store files list", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFiles().List(ctx, "vs-1", nil)
		}, "GET", "/v1/vector_stores/vs-1/files", true},
		{"vector store files retrieve", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFiles().Retrieve(ctx, "vs-1", "file-1")
		}, "GET", "/v1/vector_stores/vs-1/files/file-1", true},
		{"vector store files create", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFiles().Create(ctx, "vs-1", p)
		}, "POST", "/v1/vector_stores/vs-1/files", true},
		{"vector store files delete", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFiles().Delete(ctx, "vs-1", "file-1")
		}, "DELETE", "/v1/vector_stores/vs-1/files/file-1", true},

		{"file batches create", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFileBatches().Create(ctx, "vs-1", p)
		}, "POST", "/v1/vector_stores/vs-1/file_batches", true},
		{"file batches retrieve", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFileBatches().Retrieve(ctx, "vs-1", "fb-1")
		}, "GET", "/v1/vector_stores/vs-1/file_batches/fb-1", true},
		{"file batches cancel", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFileBatches().Cancel(ctx, "vs-1", "fb-1")
		}, "POST", "/v1/vector_stores/vs-1/file_batches/fb-1/cancel", true},
		{"file batches list", func(c *Client) (*oaikit.Response, error) {
			return c.VectorStoreFileBatches().List(ctx, "vs-1", "fb-1", nil)
		}, "GET", "/v1/vector_stores/vs-1/file_batches/fb-1/files", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := newRecordingClient(t)

			_, err := tt.call(c)
			require.NoError(t, err)
			require.Len(t, *got, 1)

			req := (*got)[0]
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			if tt.beta {
				assert.Equal(t, "assistants=v2", req.Beta)
			} else {
				assert.Empty(t, req.Beta)
			}
		})
	}
}

func TestAssistantsFamilyLeavesOwnerUnchanged(t *testing.T) {
	c, _ := newRecordingClient(t)
	_ = c.Threads()
	assert.NotContains(t, c.Config().ExtraHeaders(), BetaHeader)
}

func TestListQuery(t *testing.T) {
	c, got := newRecordingClient(t)

	_, err := c.Messages().List(context.Background(), "th-1", oaikit.Params{"limit": 5, "order": "asc"})
	require.NoError(t, err)
	assert.Equal(t, "limit=5&order=asc", (*got)[0].Query)
}

func TestMultipartResources(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "speech.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("ID3"), 0o600))
	imagePath := filepath.Join(dir, "otter.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("PNG"), 0o600))

	ctx := context.Background()

	tests := []struct {
		name     string
		call     func(c *Client) (*oaikit.Response, error)
		path     string
		filename string
	}{
		{"audio transcribe", func(c *Client) (*oaikit.Response, error) {
			return c.Audio().Transcribe(ctx, oaikit.Params{"file": audioPath, "model": "whisper-1"})
		}, "/v1/audio/transcriptions", "speech.mp3"},
		{"audio translate", func(c *Client) (*oaikit.Response, error) {
			return c.Audio().Translate(ctx, oaikit.Params{"file": audioPath, "model": "whisper-1"})
		}, "/v1/audio/translations", "speech.mp3"},
		{"images edit", func(c *Client) (*oaikit.Response, error) {
			return c.Images().Edit(ctx, oaikit.Params{"image": imagePath, "prompt": "add a hat"})
		}, "/v1/images/edits", "otter.png"},
		{"images variations", func(c *Client) (*oaikit.Response, error) {
			return c.Images().Variations(ctx, oaikit.Params{"image": imagePath, "n": 2})
		}, "/v1/images/variations", "otter.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := newRecordingClient(t)

			_, err := tt.call(c)
			require.NoError(t, err)

			req := (*got)[0]
			assert.Equal(t, tt.path, req.Path)
			assert.True(t, strings.HasPrefix(req.Type, "multipart/form-data"))
			assert.Contains(t, req.Body, `filename="`+tt.filename+`"`)
		})
	}

	t.Run("missing path", func(t *testing.T) {
		c, got := newRecordingClient(t)
		_, err := c.Audio().Transcribe(ctx, oaikit.Params{"file": filepath.Join(dir, "missing.mp3")})
		assert.ErrorIs(t, err, oaikit.ErrInvalidFile)
		assert.Empty(t, *got)
	})
}
