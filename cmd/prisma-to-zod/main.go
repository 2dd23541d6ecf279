package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand — default to generate
		return runGenerate(os.Args[1:])
	}

	switch os.Args[1] {
	case "generate":
		return runGenerate(os.Args[2:])
	case "dump":
		return runDump(os.Args[2:])
	case "--version", "-v":
		fmt.Println("prisma-to-zod", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// Check if first arg starts with - (it's a flag, not a subcommand)
		if strings.HasPrefix(os.Args[1], "-") {
			return runGenerate(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("prisma-to-zod - generate Zod validation schemas from a Prisma client declaration file")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  prisma-to-zod [flags]             Generate schemas (default)")
	fmt.Println("  prisma-to-zod generate [flags]    Generate schemas")
	fmt.Println("  prisma-to-zod dump [flags]        Dump generated bindings as JSON (debug)")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Generate Flags:")
	fmt.Println("  --client, -c <path>    Path to the client declaration file")
	fmt.Println("                         (default: node_modules/.prisma/client/index.d.ts)")
	fmt.Println("  --output, -o <path>    Path to write the schema module to")
	fmt.Println("                         (default: prisma/zod/index.ts)")
	fmt.Println("  --config <path>        Path to prisma-to-zod.config.json")
	fmt.Println("  --strict               Treat warnings as errors")
	fmt.Println("  --quiet                Suppress warnings")
	fmt.Println("  --force                Ignore the generation cache")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  prisma-to-zod")
	fmt.Println("  prisma-to-zod generate --client node_modules/.prisma/client/index.d.ts")
	fmt.Println("  prisma-to-zod generate -o src/schemas/index.ts --strict")
	fmt.Println("  prisma-to-zod dump -c client/index.d.ts")
	fmt.Println()
}
