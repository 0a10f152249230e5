package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kaptinlin/jsonschema"
	"github.com/spf13/cobra"

	"github.com/addrummond/jsoncomplete"
	"github.com/addrummond/jsoncomplete/internal/log"
)

func newDecodeCmd() *cobra.Command {
	var repair bool
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a possibly truncated JSON document and print it indented",
		Long: `Decode a possibly truncated JSON document and print the value indented.

With --repair, malformed input is passed to a general purpose JSON repairer
instead of being rejected.

With --schema, a complete document is validated against the given JSON
Schema. Truncated documents are not validated since required members may not
have arrived yet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var opts []jsoncomplete.Option
			if repair {
				opts = append(opts, jsoncomplete.WithRepair())
			}
			v, state, err := jsoncomplete.ParsePartial(text, opts...)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			log.Infof("parse state: %s", state)

			if schemaFile != "" {
				if state == jsoncomplete.ParseStateSuccessful {
					if err := validateFile(schemaFile, v); err != nil {
						return err
					}
				} else {
					log.Warnf("document is %s, not complete; skipping schema validation", state)
				}
			}

			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", envBool("JSONCOMPLETE_REPAIR", false), "repair malformed input instead of rejecting it")
	cmd.Flags().StringVar(&schemaFile, "schema", envString("JSONCOMPLETE_SCHEMA", ""), "JSON Schema file to validate complete documents against")

	return cmd
}

func validateFile(schemaFile string, v any) error {
	schemaBytes, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	validator, err := compiler.Compile(schemaBytes)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	result := validator.Validate(v)
	if !result.IsValid() {
		var errMsgs []string
		for field, validationErr := range result.Errors {
			errMsgs = append(errMsgs, fmt.Sprintf("%s: %s", field, validationErr.Message))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
