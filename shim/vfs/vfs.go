// Re-exports the subset of github.com/microsoft/typescript-go/internal/vfs
// consumed by this repository.
package vfs

import (
	"github.com/microsoft/typescript-go/internal/vfs"
)

type (
	FS          = vfs.FS
	FileInfo    = vfs.FileInfo
	Entries     = vfs.Entries
	WalkDirFunc = vfs.WalkDirFunc
)
