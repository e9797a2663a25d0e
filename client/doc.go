// Package client provides the OpenAI and Azure OpenAI API client.
//
// A Client resolves its settings once, at construction, from per-client
// options layered over process-wide defaults (oaikit.Default), and exposes
// lazily created resource clients that share one transport.
//
// # Basic Usage
//
//	c, err := client.New(client.WithAccessToken(os.Getenv("OPENAI_ACCESS_TOKEN")))
//	if err != nil {
//	    return err // *oaikit.ConfigurationError
//	}
//
//	resp, err := c.Chat(ctx, oaikit.Params{
//	    "model":    "gpt-4o",
//	    "messages": []map[string]string{{"role": "user", "content": "Hello!"}},
//	})
//
// # Credentials
//
// Exactly one of an access token and a token provider must resolve. Azure
// deployments commonly use a provider backed by Azure AD:
//
//	c, err := client.New(
//	    client.WithAPIType(oaikit.APITypeAzure),
//	    client.WithURIBase("https://my-resource.openai.azure.com/openai/deployments/gpt-4o"),
//	    client.WithAPIVersion("2024-02-01"),
//	    client.WithTokenProvider(tokenSource), // an oauth2.TokenSource
//	)
//
// # Beta APIs
//
// Beta returns a copy of a client that opts into beta APIs; the original is
// not changed:
//
//	beta := c.Beta(client.BetaAPI{Name: "assistants", Version: "v2"})
//
// The assistants family (Assistants, Threads, Messages, Runs, RunSteps,
// VectorStores, VectorStoreFiles, VectorStoreFileBatches) always sends
// assistants=v2.
//
// # Retries and Events
//
// Clients do not retry by default. Enable retries of transient errors and
// observe requests with:
//
//	events := make(chan client.Event, 100)
//	c, err := client.New(
//	    client.WithRetry(client.DefaultRetryConfig()),
//	    client.WithEvents(events),
//	)
//
// # Diagnostics
//
// Client and Config print and log with the access token, organization id
// and extra headers replaced by [REDACTED].
package client
