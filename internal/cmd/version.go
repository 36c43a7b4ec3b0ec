package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
)

// version will be set by build flags from cmd/lgo/main.go
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number and run watermark of the lgo CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lgo version %s (%s)\n", version, predictor.WatermarkID)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("lgo version {{.Version}} (%s)\n", predictor.WatermarkID))
}

// SetVersion sets the version string (called from main.go)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetVersion returns the current version string
func GetVersion() string {
	return version
}
