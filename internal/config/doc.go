// Package config provides configuration loading, merging, and validation
// facilities for the edge service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The returned config is
// treated as immutable for the lifetime of the process.
//
// The outbound proxy variables (ALL_PROXY, HTTPS_PROXY, HTTP_PROXY) are
// deliberately absent from this package: the client factory in the genai
// package re-reads them from the environment on every call.
package config
