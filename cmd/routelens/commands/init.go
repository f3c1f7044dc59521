package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a routelens.yaml in the current directory",
	Long: `Interactively create a routelens.yaml configuration file.

Example:
  routelens init`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// initConfig is the YAML shape written by the init command.
type initConfig struct {
	Marker       string            `yaml:"marker"`
	DebounceMS   int               `yaml:"debounce_ms"`
	Color        bool              `yaml:"color"`
	BasePrefixes map[string]string `yaml:"base_prefixes,omitempty"`
}

func runInit(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	const configPath = "routelens.yaml"

	if _, err := os.Stat(configPath); err == nil {
		if jsonOutput {
			printSuccess(InitOutput{ConfigPath: configPath, Created: false})
		} else {
			fmt.Printf("  %s %s already exists\n", yellow("!"), configPath)
		}
		return
	}

	marker := "▸"
	debounce := "300"
	useAPIPrefix := true

	if !jsonOutput {
		fmt.Printf("\n  %s Init\n\n", cyan("routelens"))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Marker glyph").
					Description("Shown before each resolved route path").
					Value(&marker),
				huh.NewInput().
					Title("Debounce (ms)").
					Description("Quiet period before re-annotating on change").
					Value(&debounce),
				huh.NewConfirm().
					Title("Map routes/api.php to the /api base prefix?").
					Value(&useAPIPrefix),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Printf("  %s Cancelled\n", yellow("!"))
			return
		}
	}

	cfg := initConfig{
		Marker:     marker,
		DebounceMS: parseDebounce(debounce),
		Color:      true,
	}
	if useAPIPrefix {
		cfg.BasePrefixes = map[string]string{"routes/api.php": "api"}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to write %s: %v\n", red("Error:"), configPath, err)
		}
		os.Exit(1)
	}

	if jsonOutput {
		printSuccess(InitOutput{ConfigPath: configPath, Created: true})
		return
	}
	fmt.Printf("  %s Created %s\n\n", green("✓"), configPath)
}

// parseDebounce parses the debounce form input, falling back to the default
// on anything that isn't a positive number.
func parseDebounce(s string) int {
	var ms int
	if _, err := fmt.Sscanf(s, "%d", &ms); err != nil || ms <= 0 {
		return 300
	}
	return ms
}
