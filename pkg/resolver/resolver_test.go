package resolver

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolve_FlatRoute(t *testing.T) {
	records := Resolve(`Route::get('/users', 'index');`, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ResolvedPath != "/users" {
		t.Errorf("ResolvedPath = %q, want %q", records[0].ResolvedPath, "/users")
	}
}

func TestResolve_RootPath(t *testing.T) {
	records := Resolve(`Route::get('/', 'home');`, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ResolvedPath != "/" {
		t.Errorf("ResolvedPath = %q, want %q", records[0].ResolvedPath, "/")
	}
}

func TestResolve_NestedGroups(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('api')->group(function () {`,
		`    Route::prefix('v1')->group(function () {`,
		`        Route::get('/posts/{id}', 'show');`,
		`    });`,
		`});`,
	}, "\n")

	records := Resolve(text, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ResolvedPath != "/api/v1/posts/{id}" {
		t.Errorf("ResolvedPath = %q, want %q", records[0].ResolvedPath, "/api/v1/posts/{id}")
	}
}

func TestResolve_GroupCloseRestoresOuterPrefix(t *testing.T) {
	text := strings.Join([]string{
		`Route::group(['prefix'=>'a'], function(){`,
		`    Route::get('/inner', 'inner');`,
		`});`,
		`Route::get('/after', 'after');`,
	}, "\n")

	records := Resolve(text, Options{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ResolvedPath != "/a/inner" {
		t.Errorf("inner ResolvedPath = %q, want %q", records[0].ResolvedPath, "/a/inner")
	}
	if records[1].ResolvedPath != "/after" {
		t.Errorf("after ResolvedPath = %q, want %q", records[1].ResolvedPath, "/after")
	}
}

func TestResolve_SlashCollapsing(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('api/')->group(function () {`,
		`    Route::get('/posts', 'index');`,
		`});`,
	}, "\n")

	records := Resolve(text, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ResolvedPath != "/api/posts" {
		t.Errorf("ResolvedPath = %q, want %q", records[0].ResolvedPath, "/api/posts")
	}
}

func TestResolve_BasePrefixComposition(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('v1')->group(function () {`,
		`    Route::get('/posts', 'index');`,
		`});`,
	}, "\n")

	records := Resolve(text, Options{BasePrefix: "api"})
	if records[0].ResolvedPath != "/api/v1/posts" {
		t.Errorf("ResolvedPath = %q, want %q", records[0].ResolvedPath, "/api/v1/posts")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('api')->group(function () {`,
		`    Route::get('/posts', 'index');`,
		`    Route::resource('photos', PhotoController::class);`,
		`});`,
	}, "\n")

	first := Resolve(text, Options{BasePrefix: "base"})
	second := Resolve(text, Options{BasePrefix: "base"})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolves differ:\n%v\n%v", first, second)
	}
}

func TestResolve_MalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"}}}}}}",
		"{{{{",
		`Route::prefix('broken`,
		`Route::group(['prefix' => ], function () {`,
		strings.Repeat("{}", 1000),
	}

	for _, in := range inputs {
		// Every input produces some output; none may panic or error.
		_ = Resolve(in, Options{})
	}
}

func TestResolve_ResourceMarkerNotExpanded(t *testing.T) {
	text := strings.Join([]string{
		`Route::prefix('admin')->group(function () {`,
		`    Route::resource('photos', PhotoController::class);`,
		`});`,
	}, "\n")

	records := Resolve(text, Options{})
	if len(records) != 1 {
		t.Fatalf("expected a single marker record, got %d", len(records))
	}
	r := records[0]
	if !r.Resource || r.Method != MethodResource {
		t.Errorf("expected RESOURCE marker, got %+v", r)
	}
	if r.ResolvedPath != "/admin/photos" {
		t.Errorf("ResolvedPath = %q, want %q", r.ResolvedPath, "/admin/photos")
	}
}
