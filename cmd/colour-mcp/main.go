package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/colour-tools-mcp/internal/colours"
	"github.com/ironsheep/colour-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version, --help and palettes
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colour-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--palettes", "palettes":
			printPalette("base", colours.BaseHues())
			printPalette("fine", colours.FineHues())
			return
		case "--help", "-h", "help":
			fmt.Println("colour-tools-mcp - MCP server for image colour composition analysis")
			fmt.Println()
			fmt.Println("Usage: colour-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --palettes       Print the built-in hue palettes")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOUR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("COLOUR_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Colour MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	server.Version = Version
	srv := server.New(server.WithDebug(debug))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printPalette(name string, hues []colours.HueRange) {
	fmt.Printf("%s:\n", name)
	for _, h := range hues {
		fmt.Printf("  %s: %s\n", h.Name, h.Bounds())
	}
}
