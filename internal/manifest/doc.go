// Package manifest handles the generated project's package.json: an
// order-preserving JSON document model, alphabetical sorting of the
// dependencies and devDependencies blocks, and JSON Schema validation of
// the manifest shape. Key order is modeled explicitly (keys unique, order
// significant) rather than relying on map iteration behavior.
package manifest
