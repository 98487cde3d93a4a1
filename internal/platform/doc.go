// Package platform provides cross-platform filesystem operations used by
// the manifest rewrite path: permission handling and atomic file
// replacement via a temp file and rename in the target directory.
package platform
