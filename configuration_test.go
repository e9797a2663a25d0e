package oaikit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration(t *testing.T) {
	c := NewConfiguration()

	assert.Equal(t, "", c.AccessToken)
	assert.Equal(t, APIType(""), c.APIType)
	assert.Equal(t, "v1", c.APIVersion)
	assert.Equal(t, "", c.OrganizationID)
	assert.Equal(t, "https://api.openai.com/", c.URIBase)
	assert.Equal(t, 120*time.Second, c.RequestTimeout)
	assert.NotNil(t, c.ExtraHeaders)
	assert.Empty(t, c.ExtraHeaders)
	assert.False(t, c.LogErrors)
	assert.Nil(t, c.TokenProvider())
}

func TestAPITypeIsAzure(t *testing.T) {
	tests := []struct {
		t    APIType
		want bool
	}{
		{"", false},
		{APITypeOpenAI, false},
		{APITypeAzure, true},
		{"Azure", true},
		{"AZURE", true},
		{" azure ", true},
		{"azureish", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.t.IsAzure(), "APIType(%q)", string(tt.t))
	}
}

func TestSetTokenProvider(t *testing.T) {
	t.Run("accepts a provider func", func(t *testing.T) {
		c := NewConfiguration()
		require.NoError(t, c.SetTokenProvider(func() string { return "tok" }))
		require.NotNil(t, c.TokenProvider())

		got, err := c.TokenProvider()(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok", got)
	})

	t.Run("nil clears", func(t *testing.T) {
		c := NewConfiguration()
		require.NoError(t, c.SetTokenProvider(func() string { return "tok" }))
		require.NoError(t, c.SetTokenProvider(nil))
		assert.Nil(t, c.TokenProvider())
	})

	t.Run("non-callable is rejected and keeps previous", func(t *testing.T) {
		c := NewConfiguration()
		require.NoError(t, c.SetTokenProvider(func() string { return "tok" }))

		err := c.SetTokenProvider("a string")
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "must be callable")
		assert.NotNil(t, c.TokenProvider())
	})
}

func TestClone(t *testing.T) {
	c := NewConfiguration()
	c.AccessToken = "sk"
	c.ExtraHeaders["X-A"] = "1"
	require.NoError(t, c.SetTokenProvider(func() string { return "tok" }))

	clone := c.Clone()
	clone.ExtraHeaders["X-A"] = "2"
	clone.AccessToken = "other"

	assert.Equal(t, "1", c.ExtraHeaders["X-A"])
	assert.Equal(t, "sk", c.AccessToken)
	assert.NotNil(t, clone.TokenProvider())

	t.Run("nil headers become empty", func(t *testing.T) {
		c := &Configuration{}
		assert.NotNil(t, c.Clone().ExtraHeaders)
	})
}

func TestDefaultAndConfigure(t *testing.T) {
	prev := Default().Clone()
	t.Cleanup(func() { *Default() = *prev })

	assert.Same(t, Default(), Default())

	err := Configure(func(c *Configuration) error {
		c.AccessToken = "sk-configured"
		c.RequestTimeout = time.Second
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "sk-configured", Default().AccessToken)
	assert.Equal(t, time.Second, Default().RequestTimeout)

	err = Configure(func(c *Configuration) error {
		return c.SetTokenProvider(3.14)
	})
	assert.True(t, IsConfigurationError(err))
}
