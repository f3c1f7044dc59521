package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"routelens/pkg/annotate"
	"routelens/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-annotate route files when they change",
	Long: `Watch a directory for changes to PHP route files and print the
re-annotated file on every (debounced) change.

Examples:
  routelens watch routes/
  routelens watch . --debounce 500`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

var watchDebounceMS int

func init() {
	watchCmd.Flags().IntVar(&watchDebounceMS, "debounce", 0, "Debounce delay in milliseconds (0 uses the config value)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	cfg := loadConfig()
	root := args[0]

	delay := cfg.Debounce()
	if watchDebounceMS > 0 {
		delay = time.Duration(watchDebounceMS) * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("  %s Failed to create file watcher: %v\n", red("Error:"), err)
		os.Exit(1)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the tree recursively, skipping hidden and dependency dirs.
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			_ = watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("  %s Failed to watch %s: %v\n", red("Error:"), root, err)
		os.Exit(1)
	}

	fmt.Printf("\n  %s Watching %s\n\n", cyan("routelens"), root)

	debouncer := watch.NewDebouncer(delay)
	defer debouncer.Stop()
	session := watch.NewSession()
	colorize := useColor(cfg)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".php" {
				continue
			}

			// The latest changed file becomes the active document; a scan
			// for a file edited in the meantime is dropped on apply.
			changed := event.Name
			session.SetActive(changed)

			debouncer.Trigger(func() {
				session.Apply(changed, func() {
					timestamp := time.Now().Format("15:04:05")
					text, err := os.ReadFile(changed)
					if err != nil {
						fmt.Printf("  [%s] %s %v\n", timestamp, red("✗"), err)
						return
					}

					annotator := &annotate.Annotator{
						Glyph:      cfg.Marker,
						BasePrefix: basePrefixFor(cfg, changed),
						Colorize:   colorize,
					}
					fmt.Printf("  [%s] %s %s\n\n", timestamp, yellow("→"), changed)
					fmt.Println(annotator.AnnotateText(string(text)))
					fmt.Printf("\n  [%s] %s Ready\n", timestamp, green("✓"))
				})
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("  %s Watcher error: %v\n", yellow("Warning:"), err)

		case <-signals:
			fmt.Println("\n  Shutting down...")
			return
		}
	}
}
