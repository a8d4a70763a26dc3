package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. It exposes the
optimize_resume, generate_cover_letter and list_history tools and the
resumebuddy://profile resource.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "resumebuddy": {
        "command": "/path/to/resumebuddy",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Pipeline: pipeline,
		Settings: settingsService,
		Profile:  profileService,
		History:  historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
