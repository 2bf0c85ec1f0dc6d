// SPDX-License-Identifier: Apache-2.0

package http

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/lp380490944/gemini-fullstack-langgraph-quickstart/internal/logger"
)

const (
	// basicAuthScheme is the literal scheme token, matched case-sensitively
	// including the trailing space.
	basicAuthScheme = "Basic "

	// basicAuthChallenge is the value of the WWW-Authenticate header sent
	// with every 401 rejection.
	basicAuthChallenge = `Basic realm="Restricted"`
)

// defaultProtectedPrefixes is the path prefix set guarded by the auth gate.
// Fixed at handler construction; extend it to also guard "/api" if the API
// routes ever need the same protection.
var defaultProtectedPrefixes = []string{"/app"}

// withBasicAuth is an HTTP middleware that enforces HTTP Basic Authentication
// for requests whose path starts with one of the protected prefixes. Requests
// outside the protected set pass through untouched.
//
// Rejections, all terminal and all with fixed plain-text bodies:
//   - No "Authorization" header, or a scheme token other than the literal
//     `Basic ` — 401 with a `WWW-Authenticate: Basic realm="Restricted"`
//     challenge.
//   - A Basic payload that fails base64 decoding or is not valid UTF-8 — 400.
//   - A decoded pair that does not match the configured credentials — the
//     same 401 challenge as the missing-header case.
//
// On a full match the request is forwarded unmodified. The middleware keeps
// no cross-request state and never logs credential material.
func (h *Handler) withBasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.isProtectedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, basicAuthScheme) {
			log.Err(ErrNoBasicAuthorization).Send()
			writeUnauthorized(w)
			return
		}

		payload, err := base64.StdEncoding.DecodeString(authHeader[len(basicAuthScheme):])
		if err != nil || !utf8.Valid(payload) {
			log.Err(ErrMalformedAuthorizationHeader).Send()
			writePlainText(w, http.StatusBadRequest, "Invalid Authorization header")
			return
		}

		user, pass := splitCredentials(string(payload))
		if !h.credentialsMatch(user, pass) {
			log.Err(ErrWrongCredentials).Send()
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isProtectedPath reports whether path falls under any protected prefix.
func (h *Handler) isProtectedPath(path string) bool {
	for _, prefix := range h.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// splitCredentials splits a decoded Basic payload on the FIRST colon.
// The password absorbs everything after it, including further colons; a
// payload without a colon yields the whole string as username and an empty
// password.
func splitCredentials(decoded string) (user, pass string) {
	user, pass, _ = strings.Cut(decoded, ":")
	return user, pass
}

// credentialsMatch compares the presented pair against the configured one in
// constant time. Both fields are always compared so the timing does not
// reveal which one mismatched.
func (h *Handler) credentialsMatch(user, pass string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(h.creds.User)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(h.creds.Pass)) == 1

	return userMatch && passMatch
}

// writeUnauthorized writes the fixed 401 challenge response.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicAuthChallenge)
	writePlainText(w, http.StatusUnauthorized, "Unauthorized")
}

// writePlainText writes a fixed plain-text response body with the given
// status code. Unlike http.Error it appends no trailing newline, keeping the
// body byte-exact.
func writePlainText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
