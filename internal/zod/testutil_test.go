package zod_test

import (
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/p30arena/prisma-to-zod/internal/compiler"
	"github.com/p30arena/prisma-to-zod/internal/diagnostic"
	"github.com/p30arena/prisma-to-zod/internal/zod"
)

// clientTestDir returns the absolute path of the virtual directory the inline
// declaration fixtures live in.
func clientTestDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "..", "..", "testdata", "client")
}

// genEnv holds a loaded declaration program and the collectors for one test.
type genEnv struct {
	decls     *compiler.Declarations
	collector *diagnostic.Collector
}

// setupGen creates a program from inline declaration source code and returns
// the environment for testing. The caller must call env.close() when done.
func setupGen(t *testing.T, declSource string) *genEnv {
	t.Helper()

	rootDir := clientTestDir()
	fileName := "index.d.ts"
	filePath := rootDir + "/" + fileName

	fs := compiler.NewDefaultOverlayVFS(map[string]string{
		filePath: declSource,
	})

	decls, diags, err := compiler.LoadDeclarationFile(fs, rootDir, fileName)
	if err != nil {
		t.Fatalf("loading declarations: %v", err)
	}
	if len(diags) > 0 {
		t.Fatalf("declaration diagnostics: %s", compiler.FormatDiagnostics(diags))
	}

	return &genEnv{
		decls:     decls,
		collector: diagnostic.NewCollector(false, false),
	}
}

func (env *genEnv) close() {
	env.decls.Close()
}

// generate runs the full generator over the fixture with default options.
func (env *genEnv) generate(t *testing.T) (*zod.Generator, string) {
	t.Helper()
	return env.generateWith(t, zod.Options{NamespaceEnums: true})
}

// generateWith runs the full generator over the fixture with the given
// options.
func (env *genEnv) generateWith(t *testing.T, opts zod.Options) (*zod.Generator, string) {
	t.Helper()
	gen := zod.NewGenerator(env.decls.Checker, env.collector, opts)
	source := gen.Generate(env.decls.SourceFile)
	return gen, source
}

// schemaFor returns the schema expression generated for a declared name.
func schemaFor(t *testing.T, gen *zod.Generator, name string) string {
	t.Helper()
	for _, b := range gen.Bindings() {
		if b.Name == name {
			return b.Schema
		}
	}
	t.Fatalf("no binding generated for %q", name)
	return ""
}

// hasBinding reports whether a binding was generated for a declared name.
func hasBinding(gen *zod.Generator, name string) bool {
	for _, b := range gen.Bindings() {
		if b.Name == name {
			return true
		}
	}
	return false
}

// fieldSchema extracts the schema expression of one field from an object
// schema expression like "z.object({\n  id: z.number(),\n  ...})".
func fieldSchema(t *testing.T, objectSchema, field string) string {
	t.Helper()
	prefix := "  " + field + ": "
	for _, line := range strings.Split(objectSchema, "\n") {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSuffix(rest, ",")
		}
	}
	t.Fatalf("field %q not found in schema:\n%s", field, objectSchema)
	return ""
}

// hasField reports whether an object schema expression contains a field.
func hasField(objectSchema, field string) bool {
	for _, line := range strings.Split(objectSchema, "\n") {
		if strings.HasPrefix(line, "  "+field+": ") {
			return true
		}
	}
	return false
}

// assertContains fails unless s contains substr.
func assertContains(t *testing.T, s, substr, context string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: expected to contain %q, got:\n%s", context, substr, s)
	}
}

// assertNotContains fails if s contains substr.
func assertNotContains(t *testing.T, s, substr, context string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Errorf("%s: expected NOT to contain %q, got:\n%s", context, substr, s)
	}
}
