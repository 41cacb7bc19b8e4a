package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd groups the code generation commands used during development
var generateCmd = &cobra.Command{
	Use:    "generate",
	Short:  "generate code from the episode database schema",
	Long:   `generate code from the episode database schema`,
	Hidden: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
