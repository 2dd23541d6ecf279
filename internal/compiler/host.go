package compiler

import (
	"github.com/microsoft/typescript-go/shim/bundled"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// CreateDefaultFS returns the filesystem the generator reads the Prisma
// client declaration file through: the OS filesystem behind a read cache,
// with the bundled TypeScript lib files overlaid so the checker can resolve
// built-ins like Date without a node_modules install.
func CreateDefaultFS() vfs.FS {
	return bundled.WrapFS(cachedvfs.From(osvfs.FS()))
}

// CreateDefaultHost creates the compiler host LoadDeclarationFile builds its
// single-file program on.
func CreateDefaultHost(cwd string, fs vfs.FS) shimcompiler.CompilerHost {
	return shimcompiler.NewCompilerHost(cwd, fs, bundled.LibPath(), nil, nil)
}
