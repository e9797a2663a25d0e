package client

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// BetaHeader carries opt-ins to beta APIs.
const BetaHeader = "OpenAI-Beta"

// BetaAPI opts into one beta API at a version, e.g. assistants=v2.
type BetaAPI struct {
	Name    string
	Version string
}

// AssistantsV2 is the beta API the assistants family of resources requires.
var AssistantsV2 = BetaAPI{Name: "assistants", Version: "v2"}

func (b BetaAPI) String() string {
	return b.Name + "=" + b.Version
}

// Client is the entry point to the API. Resource clients are created lazily
// on first access and memoized. A Client is safe for concurrent use.
type Client struct {
	config    Config
	transport *transport.Transport
	customize []func(*transport.Stack)

	// Lazy-initialized resource clients (protected by mutex)
	mu                     sync.RWMutex
	files                  *Files
	finetunes              *Finetunes
	images                 *Images
	models                 *Models
	assistants             *Assistants
	threads                *Threads
	messages               *Messages
	runs                   *Runs
	runSteps               *RunSteps
	audio                  *Audio
	vectorStores           *VectorStores
	vectorStoreFiles       *VectorStoreFiles
	vectorStoreFileBatches *VectorStoreFileBatches
	batches                *Batches
}

// New creates a client resolved against the process-wide defaults
// (oaikit.Default). It fails with a *oaikit.ConfigurationError when the
// credentials are invalid; no client is returned in that case.
func New(opts ...Option) (*Client, error) {
	return NewWithDefaults(oaikit.Default(), opts...)
}

// NewWithDefaults creates a client resolved against defaults. The defaults
// are read once; later changes do not affect the client.
func NewWithDefaults(defaults *oaikit.Configuration, opts ...Option) (*Client, error) {
	o := applyOptions(opts...)
	cfg, err := Resolve(defaults, o)
	if err != nil {
		return nil, err
	}
	return newClient(cfg, o.Transport), nil
}

func newClient(cfg Config, customize []func(*transport.Stack)) *Client {
	customize = slices.Clone(customize)
	return &Client{
		config:    cfg,
		transport: transport.New(cfg.settings(), customize...),
		customize: customize,
	}
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	return c.config
}

// Transport returns the transport shared by the client's resources.
func (c *Client) Transport() *transport.Transport {
	return c.transport
}

// Azure reports whether the client targets Azure OpenAI.
func (c *Client) Azure() bool {
	return c.config.Azure()
}

// Beta returns a copy of the client that sends the OpenAI-Beta header with
// apis joined in order, e.g. "assistants=v2;realtime=v1". The copy starts
// with no resource clients and c is not modified. With no apis the copy
// sends no beta header.
func (c *Client) Beta(apis ...BetaAPI) *Client {
	if len(apis) == 0 {
		return newClient(c.config, c.customize)
	}
	parts := make([]string, len(apis))
	for i, api := range apis {
		parts[i] = api.String()
	}
	return newClient(c.config.withHeader(BetaHeader, strings.Join(parts, ";")), c.customize)
}

// BetaMap is Beta with apis given as name to version. Names are sorted
// since maps have no order.
func (c *Client) BetaMap(apis map[string]string) *Client {
	names := make([]string, 0, len(apis))
	for name := range apis {
		names = append(names, name)
	}
	slices.Sort(names)

	list := make([]BetaAPI, len(names))
	for i, name := range names {
		list[i] = BetaAPI{Name: name, Version: apis[name]}
	}
	return c.Beta(list...)
}

// String renders the client with secrets redacted.
func (c *Client) String() string {
	return "client.Client" + c.config.fields()
}

// GoString is the %#v form of String.
func (c *Client) GoString() string {
	return c.String()
}

// LogValue implements slog.LogValuer.
func (c *Client) LogValue() slog.Value {
	return c.config.LogValue()
}

// lazy returns *slot, building it on first use.
func lazy[T any](c *Client, slot **T, build func() *T) *T {
	c.mu.RLock()
	if *slot != nil {
		defer c.mu.RUnlock()
		return *slot
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if *slot == nil {
		*slot = build()
	}
	return *slot
}

// Files returns the files resource.
func (c *Client) Files() *Files {
	return lazy(c, &c.files, func() *Files { return &Files{t: c.transport} })
}

// Finetunes returns the fine-tuning jobs resource.
func (c *Client) Finetunes() *Finetunes {
	return lazy(c, &c.finetunes, func() *Finetunes { return &Finetunes{t: c.transport} })
}

// Images returns the images resource.
func (c *Client) Images() *Images {
	return lazy(c, &c.images, func() *Images { return &Images{t: c.transport} })
}

// Models returns the models resource.
func (c *Client) Models() *Models {
	return lazy(c, &c.models, func() *Models { return &Models{t: c.transport} })
}

// Audio returns the audio resource.
func (c *Client) Audio() *Audio {
	return lazy(c, &c.audio, func() *Audio { return &Audio{t: c.transport} })
}

// Batches returns the batches resource.
func (c *Client) Batches() *Batches {
	return lazy(c, &c.batches, func() *Batches { return &Batches{t: c.transport} })
}

// assistantsTransport is the transport of a Beta(AssistantsV2) variant.
func (c *Client) assistantsTransport() *transport.Transport {
	return c.Beta(AssistantsV2).transport
}

// Assistants returns the assistants resource. It sends assistants=v2.
func (c *Client) Assistants() *Assistants {
	return lazy(c, &c.assistants, func() *Assistants { return &Assistants{t: c.assistantsTransport()} })
}

// Threads returns the threads resource. It sends assistants=v2.
func (c *Client) Threads() *Threads {
	return lazy(c, &c.threads, func() *Threads { return &Threads{t: c.assistantsTransport()} })
}

// Messages returns the thread messages resource. It sends assistants=v2.
func (c *Client) Messages() *Messages {
	return lazy(c, &c.messages, func() *Messages { return &Messages{t: c.assistantsTransport()} })
}

// Runs returns the runs resource. It sends assistants=v2.
func (c *Client) Runs() *Runs {
	return lazy(c, &c.runs, func() *Runs { return &Runs{t: c.assistantsTransport()} })
}

// RunSteps returns the run steps resource. It sends assistants=v2.
func (c *Client) RunSteps() *RunSteps {
	return lazy(c, &c.runSteps, func() *RunSteps { return &RunSteps{t: c.assistantsTransport()} })
}

// VectorStores returns the vector stores resource. It sends assistants=v2.
func (c *Client) VectorStores() *VectorStores {
	return lazy(c, &c.vectorStores, func() *VectorStores { return &VectorStores{t: c.assistantsTransport()} })
}

// VectorStoreFiles returns the vector store files resource. It sends
// assistants=v2.
func (c *Client) VectorStoreFiles() *VectorStoreFiles {
	return lazy(c, &c.vectorStoreFiles, func() *VectorStoreFiles {
		return &VectorStoreFiles{t: c.assistantsTransport()}
	})
}

// VectorStoreFileBatches returns the vector store file batches resource. It
// sends assistants=v2.
func (c *Client) VectorStoreFileBatches() *VectorStoreFileBatches {
	return lazy(c, &c.vectorStoreFileBatches, func() *VectorStoreFileBatches {
		return &VectorStoreFileBatches{t: c.assistantsTransport()}
	})
}

// Chat creates a chat completion.
func (c *Client) Chat(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return c.transport.JSONPost(ctx, "/chat/completions", params)
}

// ChatStream creates a chat completion and streams its chunks to fn.
func (c *Client) ChatStream(ctx context.Context, params oaikit.Params, fn transport.StreamFunc) error {
	_, err := c.transport.Stream(ctx, "/chat/completions", params, fn)
	return err
}

// Embeddings creates embeddings.
func (c *Client) Embeddings(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return c.transport.JSONPost(ctx, "/embeddings", params)
}

// Completions creates a legacy text completion.
func (c *Client) Completions(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return c.transport.JSONPost(ctx, "/completions", params)
}

// Moderations classifies input against the moderation policies.
func (c *Client) Moderations(ctx context.Context, params oaikit.Params) (*oaikit.Response, error) {
	return c.transport.JSONPost(ctx, "/moderations", params)
}
