package main

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fieldkit "github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/schemafile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema.(yaml|json)> <document.json>",
	Short: "Validate a JSON document against a schema definition",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, schemaPath, docPath string) error {
	s, err := schemafile.Load(schemaPath)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", zap.String("path", schemaPath))

	raw, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", docPath, err)
	}
	var doc any
	if err := gojson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", docPath, err)
	}

	if _, err := s.Validate(cmd.Context(), doc); err != nil {
		if iss, ok := fieldkit.AsIssue(err); ok {
			logger.Debug("validation failed",
				zap.String("path", iss.Path),
				zap.String("code", iss.Code))
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
