// Package genai builds the outbound HTTP clients used for calls to the
// generative language provider, honoring operator-supplied proxy settings.
//
// Proxy configuration is read from the conventional environment variables
// (ALL_PROXY, HTTPS_PROXY, HTTP_PROXY, first non-empty wins) on EVERY call —
// nothing is cached, so an environment change takes effect on the next client
// construction. The provider SDK's default gRPC transport does not honor
// these variables reliably, so AugmentSDKOptions forces the REST transport
// whenever a proxy is configured.
package genai
