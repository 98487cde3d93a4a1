package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/sprout-labs/sprout/internal/manifest"
)

//go:embed all:templates
var scaffoldFS embed.FS

// TemplateData holds all variables available to scaffold templates.
type TemplateData struct {
	Name        string // project name, e.g. "my-app"
	Description string // human-readable description
	Author      string // optional author line for package.json
	Version     string // semver, e.g. "1.0.0"
	Lint        bool   // whether a lint preset was selected
	LintConfig  string // selected preset ("standard", "airbnb", ...)
	Year        int    // current year
}

// NewTemplateData creates a TemplateData with derived fields populated.
func NewTemplateData(name, description, author string, lint bool, lintConfig string) *TemplateData {
	if description == "" {
		description = fmt.Sprintf("A %s project", name)
	}
	return &TemplateData{
		Name:        name,
		Description: description,
		Author:      author,
		Version:     "1.0.0",
		Lint:        lint,
		LintConfig:  lintConfig,
		Year:        time.Now().Year(),
	}
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// SetInfo describes one embedded template set.
type SetInfo struct {
	Name  string
	Files int
}

// List returns the embedded template sets in name order.
func List() ([]SetInfo, error) {
	entries, err := fs.ReadDir(scaffoldFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading template sets: %w", err)
	}

	var sets []SetInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		count := 0
		root := path.Join("templates", entry.Name())
		err := fs.WalkDir(scaffoldFS, root, func(_ string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				count++
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking template set %s: %w", entry.Name(), err)
		}
		sets = append(sets, SetInfo{Name: entry.Name(), Files: count})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}

// Generate renders the named template set into outDir. A non-empty
// destination is refused unless inPlace is set, to prevent accidental
// overwrites. The produced package.json is validated against the manifest
// schema; issues come back as warnings.
func Generate(set string, data *TemplateData, outDir string, inPlace bool) (*Result, error) {
	templatesDir := path.Join("templates", set)

	// Verify the template set exists in the embedded FS.
	if _, err := fs.ReadDir(scaffoldFS, templatesDir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if !inPlace {
		existing, err := os.ReadDir(outDir)
		if err == nil && len(existing) > 0 {
			return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outDir)
		}
	}

	result := &Result{OutputDir: outDir}

	err := fs.WalkDir(scaffoldFS, templatesDir, func(tmplPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(tmplPath, templatesDir+"/")
		outName := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outDir, filepath.FromSlash(outName))

		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}

		// Files without the .tmpl suffix are copied verbatim.
		if outName == rel {
			if err := os.WriteFile(outPath, tmplBytes, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			result.Files = append(result.Files, outName)
			return nil
		}

		tmpl, err := template.New(rel).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", rel, err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Validate the generated manifest; problems are warnings only.
	manifestFile := filepath.Join(outDir, "package.json")
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}
