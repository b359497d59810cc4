// Package config provides configuration loading, merging, and validation
// for the user-admin server and client.
//
// Configuration is assembled from multiple sources. For each field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] and [GetClientConfig], which
// project the merged [StructuredConfig] onto what each binary needs and
// validate it.
package config
