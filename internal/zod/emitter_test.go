package zod_test

import (
	"testing"

	"github.com/p30arena/prisma-to-zod/internal/zod"
)

func TestEmitter_Lines(t *testing.T) {
	e := zod.NewEmitter()
	e.Line("import { z } from %q;", "zod")
	e.Blank()
	e.Line("export const a = 1;")

	want := "import { z } from \"zod\";\n\nexport const a = 1;\n"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmitter_EmptyFormatIsBlankLine(t *testing.T) {
	e := zod.NewEmitter()
	e.Line("")
	e.Line("a = 1;")

	if got, want := e.String(), "\na = 1;\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
