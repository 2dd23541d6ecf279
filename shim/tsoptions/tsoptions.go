// Re-exports the subset of github.com/microsoft/typescript-go/internal/tsoptions
// consumed by this repository.
package tsoptions

import (
	"github.com/microsoft/typescript-go/internal/tsoptions"
)

type (
	ParsedCommandLine = tsoptions.ParsedCommandLine
)

var (
	GetParsedCommandLineOfConfigFile = tsoptions.GetParsedCommandLineOfConfigFile
)
