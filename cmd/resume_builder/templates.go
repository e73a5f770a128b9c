package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available resume templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, info := range rendering.DefaultRegistry().List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s  %s\n", info.ID, info.Name, info.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
