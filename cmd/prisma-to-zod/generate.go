package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/p30arena/prisma-to-zod/internal/compiler"
	"github.com/p30arena/prisma-to-zod/internal/config"
	"github.com/p30arena/prisma-to-zod/internal/diagnostic"
	"github.com/p30arena/prisma-to-zod/internal/gencache"
	"github.com/p30arena/prisma-to-zod/internal/zod"
)

// runGenerate executes the full generation pipeline:
// config -> cache check -> compile -> enums -> shapes -> write output.
func runGenerate(args []string) int {
	genFlags := flag.NewFlagSet("generate", flag.ExitOnError)

	var (
		configPath string
		clientPath string
		outputPath string
		strict     bool
		quiet      bool
		force      bool
	)

	genFlags.StringVar(&configPath, "config", "", "Path to prisma-to-zod config file (prisma-to-zod.config.json)")
	genFlags.StringVar(&clientPath, "client", "", "Path to the client declaration file")
	genFlags.StringVar(&clientPath, "c", "", "Path to the client declaration file (shorthand for --client)")
	genFlags.StringVar(&outputPath, "output", "", "Path to write the schema module to")
	genFlags.StringVar(&outputPath, "o", "", "Path to write the schema module to (shorthand for --output)")
	genFlags.BoolVar(&strict, "strict", false, "Treat warnings as errors")
	genFlags.BoolVar(&quiet, "quiet", false, "Suppress warnings")
	genFlags.BoolVar(&force, "force", false, "Ignore the generation cache")

	genFlags.Usage = func() {
		fmt.Println("Usage: prisma-to-zod generate [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		genFlags.PrintDefaults()
	}

	genFlags.Parse(args)

	genStart := time.Now()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	cfg, cfgFile, code := loadConfig(cwd, configPath)
	if code != 0 {
		return code
	}

	// Flags override config file values.
	if clientPath != "" {
		cfg.Client = clientPath
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	resolvedClient := cfg.Client
	if !filepath.IsAbs(resolvedClient) {
		resolvedClient = filepath.Join(cwd, resolvedClient)
	}
	resolvedOutput := cfg.Output
	if !filepath.IsAbs(resolvedOutput) {
		resolvedOutput = filepath.Join(cwd, resolvedOutput)
	}

	// Cache check: skip generation when the declaration, config, and output
	// are all unchanged since the last successful run.
	clientHash := gencache.HashFile(resolvedClient)
	configHash := ""
	if cfgFile != "" {
		configHash = gencache.HashFile(cfgFile)
	}
	cachePath := gencache.CachePath(resolvedOutput)
	if !force {
		if cache := gencache.Load(cachePath); cache.IsValid(clientHash, configHash) {
			fmt.Fprintf(os.Stderr, "up to date, skipping generation (use --force to regenerate)\n")
			return 0
		}
	}

	// Compile the declaration file.
	compileStart := time.Now()
	tsFS := compiler.CreateDefaultFS()
	fmt.Fprintf(os.Stderr, "loading declarations: %s\n", cfg.Client)

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
	compileDur := time.Since(compileStart)

	// Generate.
	genPhaseStart := time.Now()
	collector := diagnostic.NewCollector(strict, quiet)
	gen := zod.NewGenerator(decls.Checker, collector, zod.Options{
		Exclude:        cfg.Exclude,
		NamespaceEnums: cfg.NamespaceEnums(),
	})
	source := gen.Generate(decls.SourceFile)
	genDur := time.Since(genPhaseStart)

	if !quiet {
		fmt.Fprint(os.Stderr, collector.FormatAll())
	}
	if collector.HasErrors() {
		fmt.Fprintf(os.Stderr, "error: %s\n", collector.Summary())
		return 1
	}

	// Write output.
	writeStart := time.Now()
	if err := os.MkdirAll(filepath.Dir(resolvedOutput), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error: creating output directory: %v\n", err)
		return 1
	}
	if err := os.WriteFile(resolvedOutput, []byte(source), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", cfg.Output, err)
		return 1
	}

	if err := gencache.Save(cachePath, gencache.New(clientHash, configHash, resolvedOutput)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache save: %v\n", err)
	}
	writeDur := time.Since(writeStart)

	fmt.Fprintf(os.Stderr, "wrote %s (%d enums, %d models) [compile %v, generate %v, write %v, total %v]\n",
		cfg.Output, gen.EnumCount(), gen.ShapeCount(),
		compileDur.Round(time.Millisecond), genDur.Round(time.Millisecond),
		writeDur.Round(time.Millisecond), time.Since(genStart).Round(time.Millisecond))
	return 0
}

// loadConfig resolves the effective config: an explicit --config path, an
// auto-discovered prisma-to-zod.config.json in the working directory, or the
// defaults. Returns the config, the config file path used ("" for defaults),
// and a non-zero exit code on failure.
func loadConfig(cwd, configPath string) (*config.Config, string, int) {
	if configPath != "" {
		resolved := configPath
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(cwd, resolved)
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil, "", 1
		}
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", configPath)
		return cfg, resolved, 0
	}

	if discovered := config.Discover(cwd); discovered != "" {
		cfg, err := config.Load(discovered)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil, "", 1
		}
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(discovered))
		return cfg, discovered, 0
	}

	cfg := config.DefaultConfig()
	return &cfg, "", 0
}
