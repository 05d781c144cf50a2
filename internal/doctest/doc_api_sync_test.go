package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publicPkgNames are the ccase packages whose symbols documentation may reference.
var publicPkgNames = []string{
	"boundary", "caseerrors", "converter", "grapheme",
	"joiner", "pattern", "preset", "segment",
}

// internalPkgs are package names that should not appear in user-facing docs.
var internalPkgs = []string{"cliutil", "mcpserver", "naming"}

// repoRoot resolves the repository root from this file's location.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed")
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// TestDocCommentAPISync verifies that package documentation references
// symbols that actually exist in the ccase public packages.
//
// This catches:
//   - References to renamed or removed functions (e.g., converter.WithTarget)
//   - References to nonexistent presets or boundaries (e.g., preset.Dot)
//   - References to internal packages in user-facing docs (e.g., naming.Key)
func TestDocCommentAPISync(t *testing.T) {
	root := repoRoot(t)

	// Build symbol table: package name → set of exported symbol names.
	symbols := make(map[string]map[string]bool, len(publicPkgNames))
	for _, pkg := range publicPkgNames {
		symbols[pkg] = extractExportedSymbols(t, filepath.Join(root, pkg))
	}

	allPkgNames := slices.Concat(publicPkgNames, internalPkgs)
	sort.Strings(allPkgNames)
	refRe := regexp.MustCompile(`\b(` + strings.Join(allPkgNames, "|") + `)\.([A-Z][a-zA-Z0-9]*)`)

	docFiles := append([]string{"doc.go"}, docFilesOf(publicPkgNames)...)
	for _, rel := range docFiles {
		t.Run(rel, func(t *testing.T) {
			doc := packageDoc(t, filepath.Join(root, rel))
			require.NotEmpty(t, doc, "%s has no package documentation", rel)

			for i, line := range strings.Split(doc, "\n") {
				for _, match := range refRe.FindAllStringSubmatch(line, -1) {
					pkg, sym := match[1], match[2]
					if symbols[pkg] == nil {
						t.Errorf("%s: doc line %d references internal package %s.%s", rel, i+1, pkg, sym)
						continue
					}
					assert.True(t, symbols[pkg][sym],
						"%s: doc line %d references %s.%s but no such exported symbol exists",
						rel, i+1, pkg, sym)
				}
			}
		})
	}
}

// TestRootDocListsPackages verifies that the package overview in the root
// doc.go names every public package and nothing else.
func TestRootDocListsPackages(t *testing.T) {
	doc := packageDoc(t, filepath.Join(repoRoot(t), "doc.go"))

	itemRe := regexp.MustCompile(`(?m)^\s+- ([a-z]+): `)
	var listed []string
	for _, m := range itemRe.FindAllStringSubmatch(doc, -1) {
		listed = append(listed, m[1])
	}

	want := slices.DeleteFunc(slices.Clone(publicPkgNames), func(pkg string) bool {
		return pkg == "caseerrors"
	})
	sort.Strings(want)
	sort.Strings(listed)
	assert.Equal(t, want, listed)
}

func docFilesOf(pkgs []string) []string {
	files := make([]string, len(pkgs))
	for i, pkg := range pkgs {
		files[i] = filepath.Join(pkg, "doc.go")
	}
	return files
}

// packageDoc returns the package comment of a single Go file.
func packageDoc(t *testing.T, path string) string {
	t.Helper()
	fset := token.NewFileSet()
	f, err := goparser.ParseFile(fset, path, nil, goparser.ParseComments|goparser.PackageClauseOnly)
	require.NoError(t, err, "parsing %s", path)
	if f.Doc == nil {
		return ""
	}
	return f.Doc.Text()
}

// extractExportedSymbols uses go/ast to find all exported names (functions,
// methods, types, constants, variables) in the given package directory,
// excluding test files. Methods are included because doc comments use the
// godoc-style package.Method syntax (e.g., preset.Lookup).
func extractExportedSymbols(t *testing.T, dir string) map[string]bool {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "reading package dir %s", dir)

	fset := token.NewFileSet()
	syms := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := goparser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		require.NoError(t, err, "parsing %s", name)

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Name.IsExported() {
					syms[d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						if s.Name.IsExported() {
							syms[s.Name.Name] = true
						}
					case *ast.ValueSpec:
						for _, name := range s.Names {
							if name.IsExported() {
								syms[name.Name] = true
							}
						}
					}
				}
			}
		}
	}
	return syms
}
