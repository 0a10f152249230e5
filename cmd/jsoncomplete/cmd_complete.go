package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addrummond/jsoncomplete/internal/log"
)

var errInvalidCompletion = errors.New("completed document is not valid JSON")

func newCompleteCmd() *cobra.Command {
	var bracketOnly bool
	var verify bool

	cmd := &cobra.Command{
		Use:   "complete [file]",
		Short: "Complete a truncated JSON document",
		Long: `Read a truncated JSON document and print it completed to valid JSON.

If no file is provided, reads from stdin.

Input whose closing brackets do not match is reported as malformed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			comp, err := completer(bracketOnly).Completion(text)
			if err != nil {
				return fmt.Errorf("complete: %w", err)
			}
			log.Debugf("kept %d of %d bytes, suffix %q, path %v", comp.Kept, len(text), comp.Suffix, comp.Path)
			if comp.Rollback != nil {
				log.Infof("rolled back to offset %d (%v)", comp.Rollback.Offset, comp.Rollback.Reason)
			}

			if verify && !comp.Valid() {
				return errInvalidCompletion
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), comp.Text)
			return err
		},
	}

	cmd.Flags().BoolVarP(&bracketOnly, "bracket-only", "b", envBool("JSONCOMPLETE_BRACKET_ONLY", false), "close open brackets in place instead of rolling back ambiguous tokens")
	cmd.Flags().BoolVar(&verify, "verify", envBool("JSONCOMPLETE_VERIFY", false), "fail if the completed document does not parse")

	return cmd
}
