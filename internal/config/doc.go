// Package config loads the pipeloop CLI configuration from YAML with
// environment variable overrides.
package config
