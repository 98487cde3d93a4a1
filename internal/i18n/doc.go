// Package i18n wires the translation bundle into the application at boot.
// Message catalogs are embedded YAML files registered with the go-i18n
// bundle; Init installs a localizer for the configured locale and T looks
// up a message by ID, falling back to the English default text.
package i18n
