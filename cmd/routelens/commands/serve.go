package commands

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file...>",
	Short: "Serve the resolved route table over HTTP",
	Long: `Scan the given route files and serve the resolved route table:
an HTML report at / and the raw data at /routes.json.

Examples:
  routelens serve routes/web.php routes/api.php
  routelens serve routes/*.php --port 9000 --open`,
	Args: cobra.MinimumNArgs(1),
	Run:  runServe,
}

var (
	servePort string
	serveOpen bool
)

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to serve on")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the report in the browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Printf("\n  %s Route Report\n\n", cyan("routelens"))

	cfg := loadConfig()

	var out RoutesOutput
	for _, path := range args {
		records, base, err := scanFile(cfg, path)
		if err != nil {
			fmt.Printf("  %s %v\n", red("Error:"), err)
			os.Exit(1)
		}
		out.Files = append(out.Files, FileRoutesOutput{
			File:       path,
			BasePrefix: base,
			Routes:     routeOutputs(records),
		})
		out.TotalRoutes += len(records)
	}
	fmt.Printf("  %s Found %d routes in %d files\n\n", green("✓"), out.TotalRoutes, len(out.Files))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/routes.json", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_ = json.NewEncoder(w).Encode(out)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_ = reportTemplate.Execute(w, out)
	})

	url := fmt.Sprintf("http://localhost:%s", servePort)
	fmt.Printf("  %s Report:      %s\n", green("➜"), cyan(url))
	fmt.Printf("  %s Routes JSON: %s\n\n", green("➜"), cyan(url+"/routes.json"))
	fmt.Printf("  Press %s to stop\n\n", yellow("Ctrl+C"))

	if serveOpen {
		if err := browser.OpenURL(url); err != nil {
			fmt.Printf("  %s Failed to open browser: %v\n", yellow("Warning:"), err)
		}
	}

	server := &http.Server{Addr: ":" + servePort, Handler: r}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("  %s Server error: %v\n\n", red("Error:"), err)
		os.Exit(1)
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Route Report</title>
    <style>
        body { font-family: ui-monospace, monospace; margin: 2rem; color: #222; }
        h1 { font-size: 1.3rem; }
        h2 { font-size: 1rem; margin-top: 1.5rem; }
        table { border-collapse: collapse; width: 100%; }
        td, th { text-align: left; padding: 0.3rem 0.8rem; border-bottom: 1px solid #eee; }
        .method { font-weight: bold; }
        .dim { color: #888; }
    </style>
</head>
<body>
    <h1>Route Report ({{.TotalRoutes}} routes)</h1>
    {{range .Files}}
    <h2>{{.File}}{{if .BasePrefix}} <span class="dim">(base prefix: {{.BasePrefix}})</span>{{end}}</h2>
    <table>
        <tr><th>Method</th><th>Path</th><th>Line</th></tr>
        {{range .Routes}}
        <tr>
            <td class="method">{{.Method}}</td>
            <td>{{.Path}}{{if .Resource}} <span class="dim">(resource)</span>{{end}}</td>
            <td class="dim">{{.Line}}</td>
        </tr>
        {{end}}
    </table>
    {{end}}
</body>
</html>`))
