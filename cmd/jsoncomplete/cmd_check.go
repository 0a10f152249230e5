package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addrummond/jsoncomplete"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Check a JSON prefix for corruption and print the brackets that close it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			closing, err := jsoncomplete.CheckAndSuggestClose(text)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), closing)
			return err
		},
	}
}
