package manifest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sprout-labs/sprout/internal/platform"
)

// dependency blocks whose keys get sorted.
var sortedFields = []string{"dependencies", "devDependencies"}

// SortDependencies loads the package.json at path and rewrites each of the
// dependencies and devDependencies blocks with its package names in
// ascending lexicographic order, version specifiers untouched. The file is
// rewritten (two-space indent, trailing newline, atomic replace) only when
// the canonical output differs from the current bytes; when neither block
// is present the file is never touched. The operation is idempotent.
func SortDependencies(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return false, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	present := false
	for _, field := range sortedFields {
		val, ok := doc.Get(field)
		if !ok {
			continue
		}
		deps, ok := val.(*Object)
		if !ok {
			return false, fmt.Errorf("manifest %s: %q is not an object", path, field)
		}
		doc.Set(field, deps.SortedByKey())
		present = true
	}
	if !present {
		return false, nil
	}

	out, err := EncodeDocument(doc)
	if err != nil {
		return false, fmt.Errorf("encoding manifest %s: %w", path, err)
	}
	if bytes.Equal(out, data) {
		return false, nil
	}

	if err := platform.WriteFileAtomic(path, out); err != nil {
		return false, fmt.Errorf("rewriting manifest %s: %w", path, err)
	}
	return true, nil
}
