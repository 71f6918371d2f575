package main

import (
	"sort"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List carrier formats supported for embedding",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formats := engine.Registry().SupportedFormats()
		sort.Strings(formats)

		printInfo("Supported carrier formats:")
		for _, f := range formats {
			cmd.Printf("  %s\n", f)
		}
		return nil
	},
}
