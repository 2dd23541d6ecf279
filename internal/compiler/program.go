// Package compiler wraps program construction for a single generated
// declaration file. The tool never needs a user tsconfig: it synthesizes a
// minimal one in an in-memory overlay so the TypeScript compiler can
// type-check exactly one file.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// Diagnostic represents a compilation diagnostic message.
type Diagnostic struct {
	FilePath string
	Message  string
}

func (d Diagnostic) String() string {
	if d.FilePath != "" {
		return fmt.Sprintf("%s: %s", d.FilePath, d.Message)
	}
	return d.Message
}

// synthTSConfigName is the virtual tsconfig file placed next to the
// declaration file inside the overlay filesystem.
const synthTSConfigName = "prisma-to-zod.tsconfig.json"

// Declarations is a loaded declaration source: the program, its root source
// file, and a live type checker. Close must be called when done.
type Declarations struct {
	Program    *shimcompiler.Program
	SourceFile *ast.SourceFile
	Checker    *shimchecker.Checker

	release func()
}

// Close releases the type checker.
func (d *Declarations) Close() {
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

// LoadDeclarationFile creates a single-file program for the declaration
// source at declPath (resolved against cwd) and returns it with a bound
// checker. A missing or unparsable file is fatal: the caller is expected to
// abort the run.
func LoadDeclarationFile(fs vfs.FS, cwd string, declPath string) (*Declarations, []Diagnostic, error) {
	resolved := tspath.ResolvePath(cwd, declPath)
	if !fs.FileExists(resolved) {
		return nil, nil, fmt.Errorf("could not find declaration file at %v", resolved)
	}

	// Synthesize a tsconfig that pins the program to exactly this file.
	configDir := tspath.NormalizePath(resolved[:lastSlash(resolved)])
	configPath := configDir + "/" + synthTSConfigName
	overlay := NewOverlayVFS(fs, map[string]string{
		configPath: synthTSConfig(resolved),
	})

	host := CreateDefaultHost(configDir, overlay)

	parsedConfig, diagnostics := tsoptions.GetParsedCommandLineOfConfigFile(configPath, &core.CompilerOptions{}, nil, host, nil)
	if len(diagnostics) > 0 {
		return nil, convertDiagnostics(diagnostics), nil
	}
	if parsedConfig != nil && len(parsedConfig.Errors) > 0 {
		return nil, convertDiagnostics(parsedConfig.Errors), nil
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsedConfig,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}

	programDiags := program.GetProgramDiagnostics()
	if len(programDiags) > 0 {
		return nil, convertDiagnostics(programDiags), nil
	}

	program.BindSourceFiles()

	sourceFile := program.GetSourceFile(resolved)
	if sourceFile == nil {
		return nil, nil, fmt.Errorf("declaration file %v not part of program", resolved)
	}

	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		return nil, nil, errors.New("could not get type checker")
	}

	return &Declarations{
		Program:    program,
		SourceFile: sourceFile,
		Checker:    checker,
		release:    release,
	}, nil, nil
}

// synthTSConfig renders the in-memory tsconfig for a one-file program.
// skipLibCheck keeps lib.d.ts noise out of the program diagnostics; noEmit
// because the tool only reads types and writes its own artifact.
func synthTSConfig(declPath string) string {
	return fmt.Sprintf(`{
  "compilerOptions": {
    "noEmit": true,
    "skipLibCheck": true,
    "strict": true,
    "types": []
  },
  "files": [%q]
}
`, declPath)
}

func lastSlash(p string) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return i
		}
	}
	return 0
}

// convertDiagnostics converts tsgo diagnostics to our Diagnostic type.
func convertDiagnostics(tsdiags []*ast.Diagnostic) []Diagnostic {
	diags := make([]Diagnostic, len(tsdiags))
	for i, d := range tsdiags {
		var filePath string
		if d.File() != nil {
			filePath = d.File().FileName()
		}
		diags[i] = Diagnostic{
			FilePath: filePath,
			Message:  d.String(),
		}
	}
	return diags
}

// FormatDiagnostics formats diagnostics into human-readable strings.
func FormatDiagnostics(diags []Diagnostic) string {
	var result string
	for _, d := range diags {
		result += d.String() + "\n"
	}
	return result
}
