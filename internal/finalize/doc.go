// Package finalize sequences the post-scaffold steps for a freshly
// generated project: sort the package.json dependency blocks, optionally
// install dependencies with the chosen installer, optionally run a lint
// auto-fix pass, and print the closing instructional banner. Install
// failure is fatal to the run and skips the banner; everything else is
// reported and the banner still prints.
package finalize
