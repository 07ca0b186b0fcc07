package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Log to stderr; stdout is reserved for the MCP protocol.
	log.SetOutput(os.Stderr)

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("dskit-mcp"),
		kong.Description("MCP server and artifact extractor for the design-kit documentation corpus."),
		kong.Vars{"version": fmt.Sprintf("dskit-mcp %s (built %s)", version, buildTime)},
	)
	if err := kctx.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
