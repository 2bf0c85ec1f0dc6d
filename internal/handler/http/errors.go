// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the Basic Auth middleware when inspecting the
// "Authorization" HTTP header. They are logged, never written to responses,
// so rejection bodies stay fixed and carry no detail an attacker could probe.
var (
	// ErrNoBasicAuthorization is logged when a protected request carries no
	// "Authorization" header, or one whose scheme token is not `Basic `.
	ErrNoBasicAuthorization = errors.New("missing or non-Basic `Authorization` header")

	// ErrMalformedAuthorizationHeader is logged when the Basic payload fails
	// base64 decoding or decodes to bytes that are not valid UTF-8 text.
	ErrMalformedAuthorizationHeader = errors.New("malformed `Authorization` header payload")

	// ErrWrongCredentials is logged when the decoded credential pair does not
	// match the configured one. The attempted credentials are never logged.
	ErrWrongCredentials = errors.New("wrong credentials")
)
