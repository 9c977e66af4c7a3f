package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/mcp"
	"github.com/custodia-labs/artgraph/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can fetch,
group and graph artworks.

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead.

Tools:
  fetch_artworks   fetch and store a collection
  colour_facets    list an artist's colour palette
  group_artworks   group a stored collection
  artwork_graph    derive the creator/period/provider graph

Resources:
  artgraph://collections        stored collection summaries
  artgraph://collections/{id}   one collection ('latest' for the newest)

Examples:
  # Stdio mode (default)
  artgraph mcp serve

  # HTTP mode
  artgraph mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	collections, err := requireCollections()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Collections: collections})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	watchConfig(ctx, func() {
		logger.Info("Configuration reloaded")
	})

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s%s\n", addr, mcp.Endpoint)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// watchConfig runs the config watcher in the background until ctx ends.
// It is a no-op when no watcher is configured.
func watchConfig(ctx context.Context, onChange func()) {
	if configWatcher == nil {
		return
	}
	go func() {
		if err := configWatcher.Watch(ctx, onChange); err != nil && ctx.Err() == nil {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()
}
