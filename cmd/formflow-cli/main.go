package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/openapi"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/tui"
)

func main() {
	schemaPath := flag.String("schema", "", "form schema file (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to import instead of -schema")
	operation := flag.String("operation", "", "operation ID to import from the OpenAPI document")
	format := flag.String("format", "json", "output format: json, form, or pretty")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	outputFormat, err := parseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}

	formSchema, err := loadSchema(ctx, *schemaPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	for _, issue := range schema.Lint(formSchema) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
	}

	session := form.NewSession(formSchema, form.Hooks{})
	runner := tui.New(tui.WithOutputFormat(outputFormat))

	payload, err := runner.Run(ctx, session)
	if err != nil {
		log.Fatalf("Failed to collect form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Submission written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

func parseFormat(raw string) (tui.OutputFormat, error) {
	switch format := tui.OutputFormat(raw); format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected json, form, or pretty)", raw)
	}
}

func loadSchema(ctx context.Context, schemaPath, openapiPath, operation string) (schema.FormSchema, error) {
	switch {
	case schemaPath != "":
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return schema.Parse(data, schemaPath)
	case openapiPath != "":
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			return schema.FormSchema{}, err
		}
		return openapi.Import(ctx, data, operation)
	default:
		return schema.FormSchema{}, fmt.Errorf("either -schema or -openapi is required")
	}
}
