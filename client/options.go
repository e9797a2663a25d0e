package client

import (
	"maps"
	"time"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Options are per-client overrides. A nil field falls back to the defaults
// the client is resolved against; a set field always wins, even when it
// holds a zero value.
type Options struct {
	APIType        *oaikit.APIType
	APIVersion     *string
	AccessToken    *string
	LogErrors      *bool
	OrganizationID *string
	URIBase        *string
	RequestTimeout *time.Duration
	ExtraHeaders   map[string]string

	// TokenProvider accepts anything oaikit.NormalizeTokenProvider does.
	TokenProvider any

	// Transport customizers run in order when the client builds its transport.
	Transport []func(*transport.Stack)
}

// Option configures a Client.
type Option func(*Options)

// WithAPIType selects the API family, e.g. oaikit.APITypeAzure.
func WithAPIType(t oaikit.APIType) Option {
	return func(o *Options) { o.APIType = &t }
}

// WithAPIVersion sets the API version.
func WithAPIVersion(v string) Option {
	return func(o *Options) { o.APIVersion = &v }
}

// WithAccessToken sets a static access token.
func WithAccessToken(token string) Option {
	return func(o *Options) { o.AccessToken = &token }
}

// WithLogErrors enables or disables logging of structured error responses.
func WithLogErrors(enabled bool) Option {
	return func(o *Options) { o.LogErrors = &enabled }
}

// WithOrganizationID sets the organization sent as OpenAI-Organization.
func WithOrganizationID(id string) Option {
	return func(o *Options) { o.OrganizationID = &id }
}

// WithURIBase sets the service root.
func WithURIBase(uri string) Option {
	return func(o *Options) { o.URIBase = &uri }
}

// WithRequestTimeout bounds each request.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *Options) { o.RequestTimeout = &d }
}

// WithExtraHeaders replaces the default extra headers.
func WithExtraHeaders(headers map[string]string) Option {
	h := maps.Clone(headers)
	if h == nil {
		h = map[string]string{}
	}
	return func(o *Options) { o.ExtraHeaders = h }
}

// WithTokenProvider sets a token provider, typically for Azure AD. See
// oaikit.NormalizeTokenProvider for the accepted forms.
func WithTokenProvider(provider any) Option {
	return func(o *Options) { o.TokenProvider = provider }
}

// WithTransport adds a transport customizer. It may be given more than once.
//
//	c, err := client.New(client.WithTransport(func(s *transport.Stack) {
//	    s.Retry = transport.DefaultRetryConfig()
//	}))
func WithTransport(fn func(*transport.Stack)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Transport = append(o.Transport, fn)
		}
	}
}

// WithOptions merges every set field of opts.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		if opts.APIType != nil {
			o.APIType = opts.APIType
		}
		if opts.APIVersion != nil {
			o.APIVersion = opts.APIVersion
		}
		if opts.AccessToken != nil {
			o.AccessToken = opts.AccessToken
		}
		if opts.LogErrors != nil {
			o.LogErrors = opts.LogErrors
		}
		if opts.OrganizationID != nil {
			o.OrganizationID = opts.OrganizationID
		}
		if opts.URIBase != nil {
			o.URIBase = opts.URIBase
		}
		if opts.RequestTimeout != nil {
			o.RequestTimeout = opts.RequestTimeout
		}
		if opts.ExtraHeaders != nil {
			o.ExtraHeaders = maps.Clone(opts.ExtraHeaders)
		}
		if opts.TokenProvider != nil {
			o.TokenProvider = opts.TokenProvider
		}
		o.Transport = append(o.Transport, opts.Transport...)
	}
}

func applyOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
