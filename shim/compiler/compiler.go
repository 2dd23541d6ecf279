// Re-exports the subset of github.com/microsoft/typescript-go/internal/compiler
// consumed by this repository.
package compiler

import (
	"context"

	"github.com/microsoft/typescript-go/internal/checker"
	"github.com/microsoft/typescript-go/internal/compiler"
)

type (
	CompilerHost   = compiler.CompilerHost
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
)

var (
	NewCompilerHost = compiler.NewCompilerHost
	NewProgram      = compiler.NewProgram
)

// Program_GetTypeChecker returns the program's type checker and a release
// function that must be called when the checker is no longer needed.
func Program_GetTypeChecker(p *Program, ctx context.Context) (*checker.Checker, func()) {
	return p.GetTypeChecker(ctx)
}
