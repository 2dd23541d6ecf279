// Re-exports the subset of github.com/microsoft/typescript-go/internal/bundled
// consumed by this repository.
package bundled

import (
	"github.com/microsoft/typescript-go/internal/bundled"
)

var (
	WrapFS  = bundled.WrapFS
	LibPath = bundled.LibPath
)
