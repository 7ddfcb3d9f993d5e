// Package config provides configuration loading, merging, and validation
// facilities for the blog backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
