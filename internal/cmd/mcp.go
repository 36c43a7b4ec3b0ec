package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with AI tools",
	Long: `Start Model Context Protocol (MCP) server.
AI coding tools can query the predictor through stdio.

Tools provided by MCP server:
- predict_next: one prediction step with the full metric breakdown
- predict_series: successive predictions as JSON records
- residue_class: residue set classification for a value
- sequence_last: last value stored in the sequence file

Communicates via stdio for integration with Claude Desktop, Claude Code,
Cursor, and other MCP clients.`,
	Example: `  lgo mcp
  lgo mcp --sequence /var/lib/lgo/lgo_sequence.txt`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(0)
	if err != nil {
		return err
	}

	server := mcp.NewServer(settings.SequenceFile)
	return server.Start()
}
