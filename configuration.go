package oaikit

import (
	"maps"
	"strings"
	"sync"
	"time"
)

// APIType selects the API family a client talks to.
type APIType string

const (
	// APITypeOpenAI is the standard family. The zero value behaves the same.
	APITypeOpenAI APIType = "openai"

	// APITypeAzure selects Azure-hosted deployments.
	APITypeAzure APIType = "azure"
)

// IsAzure reports whether t names the Azure family, ignoring case.
func (t APIType) IsAzure() bool {
	return strings.EqualFold(strings.TrimSpace(string(t)), string(APITypeAzure))
}

const (
	DefaultAPIVersion     = "v1"
	DefaultURIBase        = "https://api.openai.com/"
	DefaultRequestTimeout = 120 * time.Second
)

// Configuration holds default settings for clients. Clients copy the values
// they need at construction time; later edits do not affect existing clients.
//
// A Configuration is not safe for concurrent mutation. Configure it before
// constructing clients from multiple goroutines.
type Configuration struct {
	// AccessToken is the static bearer credential.
	AccessToken string

	// APIType is empty for the standard family or APITypeAzure.
	APIType APIType

	// APIVersion is a path segment for the standard family and the
	// api-version query value for Azure (default "v1").
	APIVersion string

	// OrganizationID is sent as OpenAI-Organization when set.
	OrganizationID string

	// URIBase is the service root (default "https://api.openai.com/").
	URIBase string

	// RequestTimeout bounds each request (default 120s).
	RequestTimeout time.Duration

	// ExtraHeaders are sent with every request.
	ExtraHeaders map[string]string

	// LogErrors enables logging of structured error responses.
	LogErrors bool

	tokenProvider TokenProvider
}

// NewConfiguration returns a Configuration populated with defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		APIVersion:     DefaultAPIVersion,
		URIBase:        DefaultURIBase,
		RequestTimeout: DefaultRequestTimeout,
		ExtraHeaders:   map[string]string{},
	}
}

// TokenProvider returns the configured token provider, or nil.
func (c *Configuration) TokenProvider() TokenProvider {
	return c.tokenProvider
}

// SetTokenProvider sets or clears (nil) the token provider. The value is
// normalized with NormalizeTokenProvider; a value that is not callable is
// rejected with a ConfigurationError and the previous provider is kept.
func (c *Configuration) SetTokenProvider(v any) error {
	p, err := NormalizeTokenProvider(v)
	if err != nil {
		return err
	}
	c.tokenProvider = p
	return nil
}

// Clone returns a deep copy of c.
func (c *Configuration) Clone() *Configuration {
	out := *c
	out.ExtraHeaders = maps.Clone(c.ExtraHeaders)
	if out.ExtraHeaders == nil {
		out.ExtraHeaders = map[string]string{}
	}
	return &out
}

var (
	defaultConfig     *Configuration
	defaultConfigOnce sync.Once
)

// Default returns the process-wide Configuration, creating it with defaults
// on first use.
func Default() *Configuration {
	defaultConfigOnce.Do(func() {
		defaultConfig = NewConfiguration()
	})
	return defaultConfig
}

// Configure edits the process-wide Configuration in place.
//
//	err := oaikit.Configure(func(c *oaikit.Configuration) error {
//	    c.AccessToken = os.Getenv("OPENAI_ACCESS_TOKEN")
//	    return nil
//	})
func Configure(fn func(*Configuration) error) error {
	return fn(Default())
}
