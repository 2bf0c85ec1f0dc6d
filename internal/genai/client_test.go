package genai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewClient ─────────────────────────────────────────────────────────────────

// TestNewClient_NoProxy verifies that without proxy variables the handle
// wraps a default client and reports itself as not proxied.
func TestNewClient_NoProxy(t *testing.T) {
	clearProxyEnv(t)

	c := NewClient(context.Background())

	require.NotNil(t, c)
	assert.False(t, c.Proxied())
	require.NotNil(t, c.Rest())
	assert.False(t, c.Rest().IsProxySet())
	// Default client carries no fixed timeout.
	assert.Zero(t, c.Rest().GetClient().Timeout)
}

// TestNewClient_WithProxy verifies the proxied configuration: proxy applied,
// fixed 30-second timeout, handle marked as proxied.
func TestNewClient_WithProxy(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv(EnvAllProxy, "http://proxy.internal:3128")

	c := NewClient(context.Background())

	require.NotNil(t, c)
	assert.True(t, c.Proxied())
	assert.True(t, c.Rest().IsProxySet())
	assert.Equal(t, 30*time.Second, c.Rest().GetClient().Timeout)
}

// TestNewClient_ProxyPriority verifies that the client factory follows the
// same priority order as ResolveProxy.
func TestNewClient_ProxyPriority(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv(EnvHTTPSProxy, "http://https-proxy:3128")
	t.Setenv(EnvHTTPProxy, "http://http-proxy:3128")

	c := NewClient(context.Background())

	require.True(t, c.Proxied())
	assert.Equal(t, "http://https-proxy:3128", c.proxy)
}

// TestNewClient_MalformedProxyDoesNotFail verifies that construction never
// raises for a malformed proxy URI — the failure belongs to connection time.
func TestNewClient_MalformedProxyDoesNotFail(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv(EnvAllProxy, "::definitely-not-a-uri::")

	var c *Client
	assert.NotPanics(t, func() {
		c = NewClient(context.Background())
	})
	require.NotNil(t, c)
	assert.True(t, c.Proxied())
	require.NotNil(t, c.Rest())
}

// TestNewClient_NotCached verifies that each call re-reads the environment:
// two consecutive constructions under different environments differ.
func TestNewClient_NotCached(t *testing.T) {
	clearProxyEnv(t)

	first := NewClient(context.Background())
	assert.False(t, first.Proxied())

	t.Setenv(EnvAllProxy, "http://proxy.internal:3128")

	second := NewClient(context.Background())
	assert.True(t, second.Proxied())
	// The earlier handle is untouched by the environment change.
	assert.False(t, first.Proxied())
}

// TestClient_R verifies that the request shortcut is wired to the underlying
// client.
func TestClient_R(t *testing.T) {
	clearProxyEnv(t)

	c := NewClient(context.Background())
	require.NotNil(t, c.R())
}
