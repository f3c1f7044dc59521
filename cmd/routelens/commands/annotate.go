package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"routelens/pkg/annotate"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Print a route file with resolved route-path markers",
	Long: `Print a Laravel route file with a marker appended to every
route-definition line showing its fully resolved URL path.

Examples:
  routelens annotate routes/web.php
  routelens annotate routes/api.php --base-prefix api
  routelens annotate routes/web.php --json`,
	Args: cobra.ExactArgs(1),
	Run:  runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed).SprintFunc()

	cfg := loadConfig()
	path := args[0]

	text, err := os.ReadFile(path)
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	annotator := &annotate.Annotator{
		Glyph:      cfg.Marker,
		BasePrefix: basePrefixFor(cfg, path),
		Colorize:   useColor(cfg),
	}

	if jsonOutput {
		out := AnnotateOutput{File: path, BasePrefix: annotator.BasePrefix}
		for _, ann := range annotator.Annotations(string(text)) {
			out.Annotations = append(out.Annotations, AnnotationOutput{
				Line:   ann.LineIndex,
				Marker: ann.Marker,
				Path:   ann.Record.ResolvedPath,
			})
		}
		printSuccess(out)
		return
	}

	fmt.Println(annotator.AnnotateText(string(text)))
}
