package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floatkit",
		Short: "Hover tooltip and floating overlay toolkit",
		Long: `Floatkit manages the lifecycle of floating overlays, tooltips and
dropdown panels, anchored to document elements.

Controllers run on the server; a thin browser client reports pointer
events over a WebSocket and applies mount/patch/destroy commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
