package main

import (
	"fmt"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/fieldkit/openapi"
	"github.com/reoring/fieldkit/schemafile"
)

var describeCmd = &cobra.Command{
	Use:   "describe <schema.(yaml|json)>",
	Short: "Emit the JSON Schema (or OpenAPI) description of a schema definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDescribe(cmd, args[0])
	},
}

func init() {
	describeCmd.Flags().Bool("openapi", false, "wrap the schema in an OpenAPI 3 document")
	describeCmd.Flags().String("title", "fieldkit schema", "OpenAPI document title")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, schemaPath string) error {
	s, err := schemafile.Load(schemaPath)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", zap.String("path", schemaPath))

	var payload any = s.JSONSchema()
	if asOpenAPI, _ := cmd.Flags().GetBool("openapi"); asOpenAPI {
		title, _ := cmd.Flags().GetString("title")
		name := strings.TrimSuffix(filepath.Base(schemaPath), filepath.Ext(schemaPath))
		payload = openapi.Document(title, "0.1.0", name, s)
	}

	var out []byte
	if cfg.Pretty {
		out, err = gojson.MarshalIndent(payload, "", "  ")
	} else {
		out, err = gojson.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("encode description: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
