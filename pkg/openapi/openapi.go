// Package openapi turns resolved route records into an OpenAPI document
// skeleton. Paths and methods come from the resolver; schemas, request
// bodies, and responses are out of reach of a text scan and are left empty.
package openapi

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"routelens/pkg/resolver"
)

// Config configures spec generation.
type Config struct {
	// Title is the API title (default: "API").
	Title string
	// Version is the API version (default: "1.0.0").
	Version string
	// Description is the API description.
	Description string
	// Servers are the server URLs.
	Servers []Server
	// OpenAPIVersion is the spec version (default: "3.1.0").
	OpenAPIVersion string
}

// Server represents a server URL.
type Server struct {
	URL         string
	Description string
}

// Generator builds OpenAPI documents from route records.
type Generator struct {
	config Config
}

// NewGenerator creates a generator, filling in config defaults.
func NewGenerator(config Config) *Generator {
	if config.Title == "" {
		config.Title = "API"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = "3.1.0"
	}
	return &Generator{config: config}
}

// pathParamRe matches Laravel path placeholders, optional ones included:
// {id}, {slug?}.
var pathParamRe = regexp.MustCompile(`\{(\w+)\??\}`)

// Generate builds the OpenAPI document. Resource-collection records are not
// expandable from text and are skipped; their paths are returned as warnings.
func (g *Generator) Generate(records []resolver.RouteRecord) (*openapi3.T, []string) {
	doc := &openapi3.T{
		OpenAPI: g.config.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, srv := range g.config.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{
			URL:         srv.URL,
			Description: srv.Description,
		})
	}

	var warnings []string
	for _, r := range records {
		if r.Resource {
			warnings = append(warnings, "skipped resource collection at "+r.ResolvedPath)
			continue
		}

		pattern := normalizePattern(r.ResolvedPath)
		pathItem := doc.Paths.Value(pattern)
		if pathItem == nil {
			pathItem = &openapi3.PathItem{}
			doc.Paths.Set(pattern, pathItem)
		}

		for _, method := range operationMethods(r.Method) {
			op := openapi3.NewOperation()
			op.Summary = strings.TrimSpace(method + " " + pattern)
			op.Responses = openapi3.NewResponses()
			for _, name := range pathParamNames(pattern) {
				param := openapi3.NewPathParameter(name)
				param.Schema = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
				op.AddParameter(param)
			}
			pathItem.SetOperation(method, op)
		}
	}

	return doc, warnings
}

// JSON returns the spec as indented JSON.
func (g *Generator) JSON(records []resolver.RouteRecord) ([]byte, error) {
	doc, _ := g.Generate(records)
	return json.MarshalIndent(doc, "", "  ")
}

// YAML returns the spec as YAML.
func (g *Generator) YAML(records []resolver.RouteRecord) ([]byte, error) {
	doc, _ := g.Generate(records)
	return yaml.Marshal(doc)
}

// operationMethods maps a record method to the HTTP operations it declares.
// ANY matches every verb, so it expands to the full set.
func operationMethods(method string) []string {
	if method == resolver.MethodAny {
		return []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	return []string{method}
}

// normalizePattern strips Laravel's optional-parameter marker; OpenAPI has
// no optional path parameters.
func normalizePattern(p string) string {
	return strings.ReplaceAll(p, "?}", "}")
}

// pathParamNames returns the placeholder names in a path pattern, in order.
func pathParamNames(pattern string) []string {
	var names []string
	for _, m := range pathParamRe.FindAllStringSubmatch(pattern, -1) {
		names = append(names, m[1])
	}
	return names
}
