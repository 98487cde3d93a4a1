// Package updater powers the startup update banner. It checks GitHub
// Releases for a newer version, compares semantic versions, and caches
// the result for a day so the check never blocks a command.
package updater
