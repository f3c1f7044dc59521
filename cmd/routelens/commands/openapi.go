package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"routelens/pkg/openapi"
	"routelens/pkg/resolver"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi <file...>",
	Short: "Generate an OpenAPI specification from route files",
	Long: `Generate an OpenAPI 3.1 skeleton from the routes resolved out of
one or more Laravel route files. Paths and methods come from the resolver;
schemas are left for hand-editing.

Examples:
  routelens openapi routes/api.php
  routelens openapi routes/api.php --format yaml --output api.yaml
  routelens openapi routes/*.php --title "Shop API" --api-version 2.0.0`,
	Args: cobra.MinimumNArgs(1),
	Run:  runOpenAPI,
}

var (
	openapiOutput  string
	openapiFormat  string
	openapiTitle   string
	openapiVersion string
	openapiDesc    string
	openapiServer  string
)

func init() {
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file path")
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "json", "Output format (json|yaml)")
	openapiCmd.Flags().StringVar(&openapiTitle, "title", "", "API title")
	openapiCmd.Flags().StringVar(&openapiVersion, "api-version", "1.0.0", "API version")
	openapiCmd.Flags().StringVar(&openapiDesc, "description", "", "API description")
	openapiCmd.Flags().StringVar(&openapiServer, "server", "", "Server URL (e.g., http://localhost:8000)")
	rootCmd.AddCommand(openapiCmd)
}

func runOpenAPI(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if !jsonOutput {
		fmt.Printf("\n  %s OpenAPI Generator\n\n", cyan("routelens"))
	}

	cfg := loadConfig()

	var records []resolver.RouteRecord
	for _, path := range args {
		fileRecords, _, err := scanFile(cfg, path)
		if err != nil {
			if jsonOutput {
				printJSONError(err)
			} else {
				fmt.Printf("  %s %v\n", red("Error:"), err)
			}
			os.Exit(1)
		}
		records = append(records, fileRecords...)
	}

	genConfig := openapi.Config{
		Title:       openapiTitle,
		Version:     openapiVersion,
		Description: openapiDesc,
	}
	if openapiServer != "" {
		genConfig.Servers = []openapi.Server{{URL: openapiServer}}
	}

	gen := openapi.NewGenerator(genConfig)
	_, warnings := gen.Generate(records)

	var data []byte
	var err error
	if openapiFormat == "yaml" {
		data, err = gen.YAML(records)
	} else {
		data, err = gen.JSON(records)
	}
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to generate spec: %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if err := os.WriteFile(openapiOutput, data, 0644); err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to write %s: %v\n", red("Error:"), openapiOutput, err)
		}
		os.Exit(1)
	}

	if jsonOutput {
		printSuccess(OpenAPIOutput{
			File:     openapiOutput,
			Format:   openapiFormat,
			Routes:   len(records),
			Warnings: warnings,
		})
		return
	}

	for _, w := range warnings {
		fmt.Printf("  %s %s\n", yellow("Warning:"), w)
	}
	fmt.Printf("  %s Spec generated\n\n", green("✓"))
	fmt.Printf("  Output:  %s\n", green(openapiOutput))
	fmt.Printf("  Format:  %s\n", openapiFormat)
	fmt.Printf("  Routes:  %d\n\n", len(records))
}
