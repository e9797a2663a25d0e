package client

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/transport"
)

// Redacted replaces secret values in diagnostic output.
const Redacted = "[REDACTED]"

// Config is the resolved, validated configuration of a Client. It is
// immutable; accessors return copies.
type Config struct {
	apiType        oaikit.APIType
	apiVersion     string
	accessToken    string
	tokenProvider  oaikit.TokenProvider
	credential     oaikit.Credential
	logErrors      bool
	organizationID string
	uriBase        string
	requestTimeout time.Duration
	extraHeaders   map[string]string
}

// Resolve merges o over a snapshot of defaults and validates the result.
// Every field resolves independently: the override when set, the default
// otherwise. A nil defaults resolves against oaikit.NewConfiguration().
//
// Exactly one of access token and token provider must resolve; anything
// else, or a token provider that is not callable, yields a
// *oaikit.ConfigurationError.
func Resolve(defaults *oaikit.Configuration, o Options) (Config, error) {
	if defaults == nil {
		defaults = oaikit.NewConfiguration()
	}
	d := defaults.Clone()

	cfg := Config{
		apiType:        pick(o.APIType, d.APIType),
		apiVersion:     pick(o.APIVersion, d.APIVersion),
		accessToken:    pick(o.AccessToken, d.AccessToken),
		logErrors:      pick(o.LogErrors, d.LogErrors),
		organizationID: pick(o.OrganizationID, d.OrganizationID),
		uriBase:        pick(o.URIBase, d.URIBase),
		requestTimeout: pick(o.RequestTimeout, d.RequestTimeout),
		extraHeaders:   d.ExtraHeaders,
		tokenProvider:  d.TokenProvider(),
	}
	if o.ExtraHeaders != nil {
		cfg.extraHeaders = maps.Clone(o.ExtraHeaders)
	}

	var providerErr error
	if o.TokenProvider != nil {
		p, err := oaikit.NormalizeTokenProvider(o.TokenProvider)
		switch {
		case err != nil:
			providerErr = err
		case p != nil:
			cfg.tokenProvider = p
		}
	}

	if err := validateCredentialConfig(cfg.accessToken != "", cfg.tokenProvider != nil || providerErr != nil); err != nil {
		return Config{}, err
	}
	if providerErr != nil {
		return Config{}, providerErr
	}

	credential, err := oaikit.ResolveCredential(cfg.accessToken, cfg.tokenProvider)
	if err != nil {
		return Config{}, err
	}
	cfg.credential = credential
	return cfg, nil
}

func validateCredentialConfig(hasToken, hasProvider bool) error {
	switch {
	case hasToken && hasProvider:
		return oaikit.NewConfigurationError("only one of access token or token provider may be set (got both)")
	case !hasToken && !hasProvider:
		return oaikit.NewConfigurationError("access token or token provider missing (set AccessToken or a token provider)")
	}
	return nil
}

func pick[T any](override *T, fallback T) T {
	if override != nil {
		return *override
	}
	return fallback
}

// APIType returns the resolved API family.
func (c Config) APIType() oaikit.APIType { return c.apiType }

// APIVersion returns the resolved API version.
func (c Config) APIVersion() string { return c.apiVersion }

// AccessToken returns the static access token, or "" when a token provider
// is used.
func (c Config) AccessToken() string { return c.accessToken }

// TokenProvider returns the token provider, or nil.
func (c Config) TokenProvider() oaikit.TokenProvider { return c.tokenProvider }

// Credential returns the resolved credential.
func (c Config) Credential() oaikit.Credential { return c.credential }

// LogErrors reports whether structured error responses are logged.
func (c Config) LogErrors() bool { return c.logErrors }

// OrganizationID returns the organization sent as OpenAI-Organization.
func (c Config) OrganizationID() string { return c.organizationID }

// URIBase returns the service root requests are resolved against.
func (c Config) URIBase() string { return c.uriBase }

// RequestTimeout returns the per-request timeout.
func (c Config) RequestTimeout() time.Duration { return c.requestTimeout }

// ExtraHeaders returns a copy of the extra headers.
func (c Config) ExtraHeaders() map[string]string {
	return maps.Clone(c.extraHeaders)
}

// Azure reports whether the API type is "azure", ignoring case.
func (c Config) Azure() bool {
	return c.apiType.IsAzure()
}

// withHeader returns a copy of c with one extra header set. An existing
// header of the same name, in any case, is replaced.
func (c Config) withHeader(name, value string) Config {
	headers := make(map[string]string, len(c.extraHeaders)+1)
	for k, v := range c.extraHeaders {
		if !strings.EqualFold(k, name) {
			headers[k] = v
		}
	}
	headers[name] = value
	c.extraHeaders = headers
	return c
}

func (c Config) settings() transport.Settings {
	return transport.Settings{
		APIType:        c.apiType,
		APIVersion:     c.apiVersion,
		URIBase:        c.uriBase,
		OrganizationID: c.organizationID,
		Credential:     c.credential,
		ExtraHeaders:   maps.Clone(c.extraHeaders),
		RequestTimeout: c.requestTimeout,
		LogErrors:      c.logErrors,
	}
}

// String renders c with the access token, organization id and extra
// headers redacted.
func (c Config) String() string {
	return "client.Config" + c.fields()
}

// GoString is the %#v form of String.
func (c Config) GoString() string {
	return c.String()
}

// LogValue implements slog.LogValuer with the same redaction as String.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_type", string(c.apiType)),
		slog.String("api_version", c.apiVersion),
		slog.String("access_token", Redacted),
		slog.Bool("token_provider", c.tokenProvider != nil),
		slog.String("organization_id", Redacted),
		slog.String("uri_base", c.uriBase),
		slog.Duration("request_timeout", c.requestTimeout),
		slog.String("extra_headers", Redacted),
		slog.Bool("log_errors", c.logErrors),
	)
}

func (c Config) fields() string {
	return fmt.Sprintf("{APIType:%q APIVersion:%q AccessToken:%s TokenProvider:%t OrganizationID:%s URIBase:%q RequestTimeout:%s ExtraHeaders:%s LogErrors:%t}",
		c.apiType, c.apiVersion, Redacted, c.tokenProvider != nil, Redacted,
		c.uriBase, c.requestTimeout, Redacted, c.logErrors)
}
