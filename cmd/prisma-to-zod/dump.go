package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/p30arena/prisma-to-zod/internal/compiler"
	"github.com/p30arena/prisma-to-zod/internal/diagnostic"
	"github.com/p30arena/prisma-to-zod/internal/zod"
)

// dumpBinding is the JSON projection of one generated binding.
type dumpBinding struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Ident  string `json:"ident"`
	Schema string `json:"schema"`
}

// dumpOutput is the JSON document the dump subcommand prints.
type dumpOutput struct {
	Client      string        `json:"client"`
	Enums       int           `json:"enums"`
	Models      int           `json:"models"`
	Bindings    []dumpBinding `json:"bindings"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}

// runDump generates in memory and prints the bindings as JSON to stdout.
// Nothing is written to disk; the cache is neither read nor updated.
func runDump(args []string) int {
	dumpFlags := flag.NewFlagSet("dump", flag.ExitOnError)

	var (
		configPath string
		clientPath string
	)

	dumpFlags.StringVar(&configPath, "config", "", "Path to prisma-to-zod config file (prisma-to-zod.config.json)")
	dumpFlags.StringVar(&clientPath, "client", "", "Path to the client declaration file")
	dumpFlags.StringVar(&clientPath, "c", "", "Path to the client declaration file (shorthand for --client)")

	dumpFlags.Usage = func() {
		fmt.Println("Usage: prisma-to-zod dump [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		dumpFlags.PrintDefaults()
	}

	dumpFlags.Parse(args)

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	cfg, _, code := loadConfig(cwd, configPath)
	if code != 0 {
		return code
	}
	if clientPath != "" {
		cfg.Client = clientPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	tsFS := compiler.CreateDefaultFS()
	decls, diags, err := compiler.LoadDeclarationFile(tsFS, cwd, cfg.Client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(diags))
		return 1
	}
	defer decls.Close()

	collector := diagnostic.NewCollector(false, true)
	gen := zod.NewGenerator(decls.Checker, collector, zod.Options{
		Exclude:        cfg.Exclude,
		NamespaceEnums: cfg.NamespaceEnums(),
	})
	gen.Generate(decls.SourceFile)

	out := dumpOutput{
		Client: cfg.Client,
		Enums:  gen.EnumCount(),
		Models: gen.ShapeCount(),
	}
	for _, b := range gen.Bindings() {
		kind := "model"
		if b.Kind == zod.BindingEnum {
			kind = "enum"
		}
		out.Bindings = append(out.Bindings, dumpBinding{
			Kind:   kind,
			Name:   b.Name,
			Ident:  b.Ident,
			Schema: b.Schema,
		})
	}
	for _, d := range collector.Diagnostics() {
		out.Diagnostics = append(out.Diagnostics, d.String())
	}

	if err := json.MarshalWrite(os.Stdout, out, jsontext.WithIndent("  ")); err != nil {
		fmt.Fprintf(os.Stderr, "error: encoding dump: %v\n", err)
		return 1
	}
	fmt.Println()
	return 0
}
