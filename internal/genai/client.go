// SPDX-License-Identifier: Apache-2.0

package genai

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
)

// clientTimeout bounds every outbound request made through a proxied client.
const clientTimeout = 30 * time.Second

// Client is an outbound HTTP client handle. It is always usable: when no
// proxy is configured it wraps a default resty client, so call sites never
// need a nil check or a separate fallback branch. Handles are intended to be
// long-lived and reused across many outbound calls.
type Client struct {
	rest    *resty.Client
	proxied bool
	proxy   string
}

// NewClient constructs an outbound client handle consistent with the current
// proxy environment.
//
// When [ResolveProxy] yields a proxy URI the underlying client is configured
// with that proxy and a fixed 30-second timeout; TLS certificate verification
// and automatic redirect following stay at resty's defaults (both on).
// Without a proxy the handle wraps an unconfigured default client.
//
// The environment is re-read on every call, never cached. Construction never
// fails: a malformed proxy URI is deferred to the transport's own
// connection-time error.
func NewClient(ctx context.Context) *Client {
	proxy, ok := ResolveProxy()
	if !ok {
		return &Client{rest: resty.New()}
	}

	logger.FromContext(ctx).Debug().
		Str("proxy", redactProxy(proxy)).
		Msg("building proxied outbound client")

	rest := resty.New().
		SetProxy(proxy).
		SetTimeout(clientTimeout)

	return &Client{rest: rest, proxied: true, proxy: proxy}
}

// Proxied reports whether this handle was built with a proxy. Call sites that
// need provider-specific workarounds for proxied traffic branch on this
// instead of inspecting the environment again.
func (c *Client) Proxied() bool {
	return c.proxied
}

// R starts a new request on the underlying client, mirroring resty's API.
func (c *Client) R() *resty.Request {
	return c.rest.R()
}

// Rest exposes the underlying resty client for call sites that need to pass
// it to SDK constructors or configure request-level details.
func (c *Client) Rest() *resty.Client {
	return c.rest
}
