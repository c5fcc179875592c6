// Package config provides configuration loading, merging, and validation
// facilities for the server and the client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags of the client CLI (client only)
//  2. Environment variables
//  3. Command-line flags (server only)
//  4. JSON or YAML config file
//  5. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
