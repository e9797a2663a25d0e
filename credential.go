package oaikit

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider returns a bearer credential. The transport invokes it once
// per request, so implementations should cache tokens themselves.
type TokenProvider func(ctx context.Context) (string, error)

// Credential is the resolved authentication scheme of a client: either a
// StaticToken or a ProviderCredential. A nil Credential means none is set.
type Credential interface {
	// Token returns the bearer value to send with a request.
	Token(ctx context.Context) (string, error)

	credential()
}

// StaticToken is a fixed access token.
type StaticToken string

// Token returns the token itself.
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

func (StaticToken) credential() {}

// ProviderCredential wraps a TokenProvider, typically an Azure AD token source.
type ProviderCredential struct {
	Provider TokenProvider
}

// Token calls the provider.
func (p ProviderCredential) Token(ctx context.Context) (string, error) {
	token, err := p.Provider(ctx)
	if err != nil {
		return "", fmt.Errorf("token provider: %w", err)
	}
	return token, nil
}

func (ProviderCredential) credential() {}

// IsProvider reports whether c is backed by a token provider.
func IsProvider(c Credential) bool {
	_, ok := c.(ProviderCredential)
	return ok
}

// ResolveCredential turns the two credential fields into a Credential,
// enforcing that exactly one of them is set.
func ResolveCredential(accessToken string, provider TokenProvider) (Credential, error) {
	switch {
	case accessToken != "" && provider != nil:
		return nil, NewConfigurationError("only one of access token or token provider may be set (got both)")
	case accessToken != "":
		return StaticToken(accessToken), nil
	case provider != nil:
		return ProviderCredential{Provider: provider}, nil
	default:
		return nil, NewConfigurationError("access token or token provider missing (set AccessToken or a token provider)")
	}
}

type contextTokenSource interface {
	Token(ctx context.Context) (string, error)
}

// NormalizeTokenProvider converts any callable-like value into a TokenProvider.
// Accepted: nil, TokenProvider, func(context.Context) (string, error),
// func() (string, error), func() string, oauth2.TokenSource and any value with
// a Token(context.Context) (string, error) method. Anything else yields a
// ConfigurationError.
func NormalizeTokenProvider(v any) (TokenProvider, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case TokenProvider:
		return p, nil
	case func(context.Context) (string, error):
		if p == nil {
			return nil, nil
		}
		return p, nil
	case func() (string, error):
		if p == nil {
			return nil, nil
		}
		return func(context.Context) (string, error) { return p() }, nil
	case func() string:
		if p == nil {
			return nil, nil
		}
		return func(context.Context) (string, error) { return p(), nil }, nil
	case oauth2.TokenSource:
		return func(context.Context) (string, error) {
			tok, err := p.Token()
			if err != nil {
				return "", err
			}
			return tok.AccessToken, nil
		}, nil
	case contextTokenSource:
		return p.Token, nil
	default:
		return nil, NewConfigurationError("token provider must be callable: got %T, want a func returning a token, an oauth2.TokenSource or nil", v)
	}
}
