// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary, so a rebranded binary carries its own
// name, URLs, and environment prefix without code changes.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	DocsURL     string `yaml:"docs_url"`
	RepoURL     string `yaml:"repo_url"`
	DonateURL   string `yaml:"donate_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "sprout",
			DisplayName: "Sprout",
			Description: "Project generator for JavaScript web applications",
			HomeDir:     ".sprout",
			EnvPrefix:   "SPROUT",
			GitHubRepo:  "sprout-labs/sprout",
			DocsURL:     "https://sprout-labs.github.io/docs",
			RepoURL:     "https://github.com/sprout-labs/sprout",
			DonateURL:   "https://opencollective.com/sprout",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sprout").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Sprout").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sprout").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SPROUT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DocsURL returns the documentation site printed in the final banner.
func DocsURL() string { load(); return defaults.DocsURL }

// RepoURL returns the source repository URL printed in the final banner.
func RepoURL() string { load(); return defaults.RepoURL }

// DonateURL returns the donation URL printed in the final banner.
func DonateURL() string { load(); return defaults.DonateURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOCALE") → "SPROUT_LOCALE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
