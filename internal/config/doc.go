// Package config provides configuration loading, merging, and validation
// facilities for the sync server and the sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig], which
// map the merged [StructuredConfig] onto role-specific views and validate
// them.
package config
