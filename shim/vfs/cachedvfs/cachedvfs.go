// Re-exports github.com/microsoft/typescript-go/internal/vfs/cachedvfs.
package cachedvfs

import (
	"github.com/microsoft/typescript-go/internal/vfs/cachedvfs"
)

var From = cachedvfs.From
