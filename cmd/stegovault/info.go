package main

import (
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <carrier>",
	Short: "Show a carrier's format, sample count, and embedding capacity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := engine.Inspect(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printInfo("Carrier: %s", info.Path)
		cmd.Printf("  Format:   %s\n", info.Format)
		cmd.Printf("  Kind:     %s\n", info.Kind)
		cmd.Printf("  Samples:  %s\n", humanize.Comma(int64(info.Samples)))
		cmd.Printf("  Capacity: %s (%d bytes)\n", humanize.Bytes(uint64(info.CapacityBytes)), info.CapacityBytes)

		if len(info.Details) > 0 {
			keys := make([]string, 0, len(info.Details))
			for k := range info.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			cmd.Println("  Details:")
			for _, k := range keys {
				cmd.Printf("    %s: %v\n", k, info.Details[k])
			}
		}
		return nil
	},
}
