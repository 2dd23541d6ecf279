// Re-exports the subset of github.com/microsoft/typescript-go/internal/core
// consumed by this repository.
package core

import (
	"github.com/microsoft/typescript-go/internal/core"
)

type (
	CompilerOptions = core.CompilerOptions
	Tristate        = core.Tristate
)

const (
	TSUnknown = core.TSUnknown
	TSFalse   = core.TSFalse
	TSTrue    = core.TSTrue
)
