package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/lmenard/dskit-mcp/internal/extract"
	"github.com/lmenard/dskit-mcp/internal/mcp"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd         `cmd:"" default:"1" help:"Start the MCP server on stdio"`
	Extract ExtractCmd       `cmd:"" help:"Build the JSON documentation artifacts from a docs checkout"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	DataDir   string `short:"d" env:"DSKIT_DATA_DIR" default:"data" help:"Directory holding index.json, icons.json and colors.json"`
	CacheSize int    `env:"DSKIT_CACHE_SIZE" default:"50" help:"Maximum number of section files kept in memory"`
}

// Run loads the artifacts, then serves MCP on stdio until a signal or a
// transport error stops it.
func (c *ServeCmd) Run() error {
	log.Printf("dskit-mcp %s starting, data dir %q, cache size %d", version, c.DataDir, c.CacheSize)

	server, err := mcp.NewServer(c.DataDir, c.CacheSize)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, shutting down", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	log.Println("server stopped")
	return nil
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"Path to a local checkout of the upstream documentation repository"`
	Out    string `short:"o" env:"DSKIT_DATA_DIR" default:"data" help:"Artifact output directory"`
}

func (c *ExtractCmd) Run() error {
	stats, err := extract.New(c.Source, c.Out).Run(context.Background())
	if err != nil {
		return err
	}

	log.Printf("extracted %d entries (%d skipped), %d section files, %d icons, %d tokens, %d families in %s",
		stats.EntriesExtracted, stats.EntriesSkipped, stats.SectionsCopied,
		stats.IconsExtracted, stats.TokensExtracted, stats.FamiliesExtracted, stats.Duration)
	log.Printf("artifacts written to %q", c.Out)
	return nil
}
