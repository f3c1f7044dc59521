package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes <file...>",
	Short: "List all resolved routes in the given files",
	Long: `Scan one or more Laravel route files and list every route with
its resolved URL path.

Examples:
  routelens routes routes/web.php
  routelens routes routes/web.php routes/api.php
  routelens routes routes/api.php --json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	cfg := loadConfig()

	var out RoutesOutput
	for _, path := range args {
		records, base, err := scanFile(cfg, path)
		if err != nil {
			if jsonOutput {
				printJSONError(err)
			} else {
				fmt.Printf("  %s %v\n", red("Error:"), err)
			}
			os.Exit(1)
		}
		out.Files = append(out.Files, FileRoutesOutput{
			File:       path,
			BasePrefix: base,
			Routes:     routeOutputs(records),
		})
		out.TotalRoutes += len(records)
	}

	if jsonOutput {
		printSuccess(out)
		return
	}

	fmt.Printf("\n  %s Routes\n\n", cyan("routelens"))
	for _, file := range out.Files {
		fmt.Printf("  %s", file.File)
		if file.BasePrefix != "" {
			fmt.Printf(" %s", dim("(base prefix: "+file.BasePrefix+")"))
		}
		fmt.Println()

		if len(file.Routes) == 0 {
			fmt.Printf("    %s\n\n", dim("no routes found"))
			continue
		}
		for _, r := range file.Routes {
			suffix := ""
			if r.Resource {
				suffix = dim("  (resource)")
			}
			fmt.Printf("    %s %s%s\n", methodColor(r.Method), r.Path, suffix)
		}
		fmt.Println()
	}
	fmt.Printf("  %s %d routes\n\n", green("✓"), out.TotalRoutes)
}

// methodColor colors an HTTP method token the conventional way.
func methodColor(method string) string {
	switch method {
	case "GET":
		return color.GreenString("%-8s", method)
	case "POST":
		return color.YellowString("%-8s", method)
	case "PUT", "PATCH":
		return color.BlueString("%-8s", method)
	case "DELETE":
		return color.RedString("%-8s", method)
	default:
		return fmt.Sprintf("%-8s", method)
	}
}
