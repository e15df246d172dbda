package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/interlink/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Start the Language Server Protocol server",
	Long: `Start a Language Server Protocol (LSP) server for interlinks.

Editors keep the server in sync with textDocument/didOpen and didChange, then
send the custom request "interlink/keyword" with a document and position to
get back the keyword being typed and its range, or null.

The server communicates over stdin/stdout using JSON-RPC. Logs go to stderr.

Examples:
  # Start LSP server (for editor integration)
  ilk lsp

  # Start with debug logging to stderr
  ilk lsp --debug`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	rootCmd.AddCommand(lspCmd)
}

func runLSP(cmd *cobra.Command, args []string) error {
	server := lsp.NewServer(lsp.Options{
		Markers: getConfig().GetMarkers(),
		Logger:  logger,
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
	})

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return server.Run(ctx)
}
