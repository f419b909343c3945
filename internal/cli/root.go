package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vgc",
	Short: "Zone-aware virtual garbage collector simulator",
	Long:  "vgc simulates a zone-aware garbage collector: tracked objects carry a lifecycle state and a memory-zone mask, and discrete sweep cycles reclaim them by a bitwise liveness rule.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)
}
