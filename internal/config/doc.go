// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. When no output root is configured, GITHUB_WORKSPACE is
// consulted before falling back to the current directory.
package config
