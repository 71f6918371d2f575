package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stegovault/pkg/config"
	"stegovault/pkg/stego"
)

var (
	// Color printers
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

var (
	cfgFile string

	// Shared state set during PersistentPreRun
	cfg    *config.Config
	engine *stego.Engine
)

var rootCmd = &cobra.Command{
	Use:   "stegovault",
	Short: "Hide and recover secret text inside image and audio carriers",
	Long: `StegoVault hides password-protected text inside the least significant
bits of image pixels or WAV audio samples, and recovers it again.

Messages can be sealed with AES-256-GCM under a key derived from your
password (PBKDF2-HMAC-SHA256, random salt per file) before embedding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		engine = stego.NewEngine(
			stego.WithIterations(cfg.KDFIterations),
			stego.WithOutputSuffix(cfg.SuffixStego),
			stego.WithOutputDir(cfg.OutputDir),
		)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.stegovault/config.yaml)")
	rootCmd.AddCommand(hideCmd, revealCmd, infoCmd, formatsCmd, versionCmd)
}
