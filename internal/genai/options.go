// SPDX-License-Identifier: Apache-2.0

package genai

import (
	"context"
	"maps"

	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
)

// SDK option keys understood by the generative language SDK.
const (
	// sdkTransportOption selects the SDK's wire transport.
	sdkTransportOption = "transport"

	// sdkTransportREST is the REST transport. The SDK's default gRPC
	// transport does not honor the proxy environment variables reliably,
	// so proxied deployments are forced onto REST.
	sdkTransportREST = "rest"
)

// AugmentSDKOptions returns a copy of the SDK option map, adjusted for the
// current proxy environment.
//
// When a proxy is configured the copy gets "transport" forced to "rest" and
// an informational diagnostic is logged naming the proxy host with any
// credentials elided. Without a proxy the returned copy is content-identical
// to the input.
//
// The input map is never mutated; the result is always an independent copy.
func AugmentSDKOptions(ctx context.Context, opts map[string]any) map[string]any {
	out := make(map[string]any, len(opts)+1)
	maps.Copy(out, opts)

	proxy, ok := ResolveProxy()
	if !ok {
		return out
	}

	out[sdkTransportOption] = sdkTransportREST

	logger.FromContext(ctx).Info().
		Str("proxy", redactProxy(proxy)).
		Msg("proxy configured, forcing REST transport for the generative language SDK")

	return out
}
