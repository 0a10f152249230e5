package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/addrummond/jsoncomplete/internal/log"
)

func main() {
	// A missing .env file is not an error; the environment is used as is.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "jsoncomplete",
		Short: "Complete truncated JSON documents",
		Long: `Complete truncated JSON documents.

Flag defaults can be set with JSONCOMPLETE_* environment variables, which are
also read from a .env file in the working directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envString("JSONCOMPLETE_LOG_LEVEL", log.LevelWarn), "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newDecodeCmd())

	return rootCmd
}
