package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stegovault/pkg/stego"
)

var (
	hideMessage     string
	hideMessageFile string
	hideOutput      string
	hidePassword    string
	hideNoEncrypt   bool
)

var hideCmd = &cobra.Command{
	Use:   "hide <carrier>",
	Short: "Embed a secret message in an image or WAV carrier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		carrierPath := args[0]

		message, err := resolveMessage()
		if err != nil {
			return err
		}

		encrypt := !hideNoEncrypt
		password := hidePassword
		if encrypt && password == "" {
			password, err = promptPassword("Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				printWarning("empty password: message will be embedded unencrypted")
				encrypt = false
			}
		}

		printInfo("Embedding %d byte message into %s", len(message), carrierPath)

		res, err := engine.Hide(cmd.Context(), stego.HideRequest{
			CarrierPath: carrierPath,
			OutputPath:  hideOutput,
			Message:     message,
			Password:    password,
			Encrypt:     encrypt,
		})
		if err != nil {
			return err
		}

		if res.Encrypted {
			printInfo("Envelope sealed with AES-256-GCM (%d byte frame)", res.PayloadBytes)
		}
		printInfo("Used %d of %d carrier samples", res.FrameBits, res.CapacityBits)
		printSuccess("Wrote %s (%s carrier, %v)", res.OutputPath, res.Kind, res.Duration)
		return nil
	},
}

func init() {
	hideCmd.Flags().StringVarP(&hideMessage, "message", "m", "", "message text to hide")
	hideCmd.Flags().StringVarP(&hideMessageFile, "message-file", "f", "", "read the message from a file")
	hideCmd.Flags().StringVarP(&hideOutput, "output", "o", "", "output path (default: <carrier>_stego.<ext>)")
	hideCmd.Flags().StringVarP(&hidePassword, "password", "p", "", "encryption password (prompted if omitted)")
	hideCmd.Flags().BoolVar(&hideNoEncrypt, "no-encrypt", false, "embed the message without encryption")
	hideCmd.MarkFlagsMutuallyExclusive("message", "message-file")
}

func resolveMessage() (string, error) {
	if hideMessageFile != "" {
		data, err := os.ReadFile(hideMessageFile)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return string(data), nil
	}
	if hideMessage == "" {
		return "", fmt.Errorf("provide a message with --message or --message-file")
	}
	return hideMessage, nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("password read failed: %w", err)
	}
	return string(pw), nil
}
