// Package config manages user-level settings stored at ~/.sprout/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred installer, lint preset, and interface locale. Environment
// variables prefixed with SPROUT_ override file values.
package config
