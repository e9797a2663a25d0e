// Package oaikit is a client SDK for the OpenAI HTTP API and Azure-hosted
// OpenAI deployments.
//
// This package holds the process-wide defaults, the credential model and the
// error types. Requests are made through [github.com/spetersoncode/oaikit/client].
//
// # Process Defaults
//
// Set defaults once, before building clients:
//
//	err := oaikit.Configure(func(c *oaikit.Configuration) error {
//	    c.AccessToken = os.Getenv("OPENAI_ACCESS_TOKEN")
//	    c.OrganizationID = os.Getenv("OPENAI_ORGANIZATION_ID")
//	    c.LogErrors = true
//	    return nil
//	})
//
// Every client copies the defaults when it is constructed and applies its own
// overrides on top:
//
//	c, err := client.New(client.WithRequestTimeout(30 * time.Second))
//
// # Credentials
//
// A client needs exactly one credential: a static access token or a token
// provider. Token providers suit Azure AD, where tokens expire:
//
//	err := oaikit.Configure(func(c *oaikit.Configuration) error {
//	    c.APIType = oaikit.APITypeAzure
//	    c.URIBase = "https://example.openai.azure.com/openai/deployments/gpt-4o"
//	    c.APIVersion = "2024-08-01-preview"
//	    return c.SetTokenProvider(tokenSource) // oauth2.TokenSource or func
//	})
//
// Setting both, or neither, makes client construction fail with a
// [ConfigurationError].
//
// # Errors
//
// Non-success responses are returned as [*APIError], which implements
// [CategorizedError]:
//
//	if oaikit.IsTransient(err) {
//	    // rate limited or server error; safe to retry later
//	}
package oaikit
