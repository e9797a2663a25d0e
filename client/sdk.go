package client

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/option"
	"github.com/spetersoncode/oaikit"
)

// SDKOptions expresses the client's resolved settings as request options for
// the official github.com/openai/openai-go client, so both can share one
// configuration:
//
//	sdk := openai.NewClient(c.SDKOptions()...)
//
// Token providers are invoked per request through a middleware.
func (c *Client) SDKOptions() []option.RequestOption {
	cfg := c.config
	opts := []option.RequestOption{
		option.WithBaseURL(sdkBaseURL(cfg)),
		option.WithRequestTimeout(cfg.requestTimeout),
	}

	if cfg.Azure() {
		if cfg.apiVersion != "" {
			opts = append(opts, option.WithQuery("api-version", cfg.apiVersion))
		}
	} else if cfg.organizationID != "" {
		opts = append(opts, option.WithOrganization(cfg.organizationID))
	}

	for k, v := range cfg.extraHeaders {
		opts = append(opts, option.WithHeader(k, v))
	}

	credential := cfg.credential
	azureKey := cfg.Azure() && !oaikit.IsProvider(credential)
	opts = append(opts, option.WithMiddleware(func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		token, err := credential.Token(req.Context())
		if err != nil {
			return nil, err
		}
		if azureKey {
			req.Header.Del("Authorization")
			req.Header.Set("api-key", token)
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return next(req)
	}))
	return opts
}

// sdkBaseURL returns the base the official SDK resolves paths against. It
// always ends in a slash.
func sdkBaseURL(cfg Config) string {
	base := strings.TrimRight(cfg.uriBase, "/")
	if !cfg.Azure() && cfg.apiVersion != "" && !strings.Contains(base, cfg.apiVersion) {
		base += "/" + cfg.apiVersion
	}
	return base + "/"
}
