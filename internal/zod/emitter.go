// Package zod translates checker types from a generated Prisma client
// declaration file into Zod schema expressions and assembles the generated
// TypeScript module.
package zod

import (
	"fmt"
	"strings"
)

// Emitter builds TypeScript source code line by line.
type Emitter struct {
	buf strings.Builder
}

// NewEmitter creates a new code emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Line writes a single line of code.
func (e *Emitter) Line(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if line == "" {
		e.buf.WriteByte('\n')
		return
	}
	e.buf.WriteString(line)
	e.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

// String returns the accumulated source code.
func (e *Emitter) String() string {
	return e.buf.String()
}
