package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/pointillism-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pointillism-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pointillism-mcp - MCP server that turns images into colored points")
			fmt.Println()
			fmt.Println("Usage: pointillism-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug       Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=<float>     Default color tolerance (1)\n", server.EnvTolerance)
			fmt.Printf("  %s=<int>            Default adaptive radius step (1)\n", server.EnvStep)
			fmt.Printf("  %s=<int>      Cap on returned points, 0 = no cap\n", server.EnvMaxPoints)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	srv := server.NewWithConfig(server.ConfigFromEnv())
	if cfg := srv.Config(); cfg.Debug {
		log.Printf("Pointillism MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: tolerance=%g step=%d max_points=%d", cfg.Tolerance, cfg.Step, cfg.MaxPoints)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
