package main

import (
	"github.com/spf13/cobra"

	"stegovault/pkg/stego"
)

var (
	revealPassword  string
	revealPlaintext bool
)

var revealCmd = &cobra.Command{
	Use:   "reveal <carrier>",
	Short: "Recover a hidden message from an image or WAV carrier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		carrierPath := args[0]

		encrypt := !revealPlaintext
		password := revealPassword
		if encrypt && password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				encrypt = false
			}
		}

		printInfo("Scanning %s for hidden data", carrierPath)

		res, err := engine.Reveal(cmd.Context(), stego.RevealRequest{
			CarrierPath: carrierPath,
			Password:    password,
			Encrypt:     encrypt,
		})
		if err != nil {
			return err
		}

		if !res.Found {
			printWarning("No hidden message found in %s", carrierPath)
			return nil
		}

		printSuccess("Recovered %d byte payload from %s carrier (%v)",
			res.PayloadBytes, res.Kind, res.Duration)
		cmd.Println(res.Message)
		return nil
	},
}

func init() {
	revealCmd.Flags().StringVarP(&revealPassword, "password", "p", "", "decryption password (prompted if omitted)")
	revealCmd.Flags().BoolVar(&revealPlaintext, "no-encrypt", false, "treat the payload as unencrypted text")
}
