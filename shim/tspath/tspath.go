// Re-exports the subset of github.com/microsoft/typescript-go/internal/tspath
// consumed by this repository.
package tspath

import (
	"github.com/microsoft/typescript-go/internal/tspath"
)

var (
	ResolvePath   = tspath.ResolvePath
	NormalizePath = tspath.NormalizePath
)
