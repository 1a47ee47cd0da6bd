package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scaffolder/internal/backend"
	"scaffolder/internal/store"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustEnv(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: scaffolder %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, string(stderr), string(stdout))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, string(stdout), args)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v", env)
	}
	return env
}

func rowPaths(t *testing.T, env map[string]any) []string {
	t.Helper()
	rows, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("expected data to be a list; got %T", env["data"])
	}
	var out []string
	for _, r := range rows {
		out = append(out, r.(map[string]any)["path"].(string))
	}
	return out
}

func TestTree_SampleDefaults(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	env := mustEnv(t, "tree")
	got := strings.Join(rowPaths(t, env), ",")
	want := "README.md,src,src/manage.py,src/requirements.txt,src/app"
	if got != want {
		t.Fatalf("unexpected rows:\n got %s\nwant %s", got, want)
	}

	first := env["data"].([]any)[0].(map[string]any)
	if first["language"] != "Markdown" || first["kind"] != "file" {
		t.Fatalf("unexpected README row: %#v", first)
	}
}

func TestTree_ExpandNestedOpensAncestors(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	env := mustEnv(t, "tree", "--expand", "src/app")
	got := rowPaths(t, env)
	if len(got) != 6 || got[5] != "src/app/project.tsx" {
		t.Fatalf("expected project.tsx visible; got %v", got)
	}

	env = mustEnv(t, "tree", "--all")
	if n := env["meta"].(map[string]any)["count"].(float64); n != 6 {
		t.Fatalf("expected 6 rows with --all; got %v", n)
	}
}

func TestTree_UnknownPath(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	_, stderr, err := runCLI(t, []string{"tree", "--expand", "nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(string(stderr), "path not found: nope") {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
}

func TestTree_FromYAMLFile(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	path := filepath.Join(t.TempDir(), "project.yaml")
	src := "Dockerfile: FROM scratch\nweb:\n  index.html: <p>hi</p>\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	env := mustEnv(t, "--tree", path, "tree", "--all")
	got := strings.Join(rowPaths(t, env), ",")
	if got != "Dockerfile,web,web/index.html" {
		t.Fatalf("unexpected rows: %s", got)
	}
}

func TestTree_EDN(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	stdout, _, err := runCLI(t, []string{"--format", "edn", "tree"})
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "{:data [") {
		t.Fatalf("expected EDN envelope; got %s", stdout)
	}
}

func TestItems_ThroughBackend(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	items, err := store.OpenItems(context.Background(), filepath.Join(t.TempDir(), "items.sqlite"))
	if err != nil {
		t.Fatalf("open items: %v", err)
	}
	defer items.Close()
	srv := httptest.NewServer(backend.NewServer(backend.NewHandler(items, nil), backend.ServerConfig{}))
	defer srv.Close()

	created := mustEnv(t, "items", "--url", srv.URL, "add", "--name", "Widget", "--description", "first")
	id, _ := created["data"].(map[string]any)["id"].(string)
	if id == "" {
		t.Fatalf("expected created item id; got %#v", created["data"])
	}

	list := mustEnv(t, "items", "--url", srv.URL, "list")
	if n := list["meta"].(map[string]any)["count"].(float64); n != 1 {
		t.Fatalf("expected 1 item; got %v", n)
	}

	shown := mustEnv(t, "items", "--url", srv.URL, "show", id)
	if shown["data"].(map[string]any)["name"] != "Widget" {
		t.Fatalf("unexpected item: %#v", shown["data"])
	}

	_, stderr, err := runCLI(t, []string{"items", "--url", srv.URL, "show", "missing"})
	if err == nil || !strings.Contains(string(stderr), "item not found: missing") {
		t.Fatalf("expected not found; err=%v stderr=%s", err, stderr)
	}

	_, _, err = runCLI(t, []string{"items", "--url", srv.URL, "add"})
	if err == nil {
		t.Fatalf("expected missing --name to fail")
	}
}

func TestConfig_InitAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCAFFOLDER_CONFIG_DIR", dir)
	t.Setenv("SCAFFOLDER_BACKEND_URL", "http://127.0.0.1:9999")

	env := mustEnv(t, "config", "init")
	path := env["data"].(map[string]any)["path"].(string)
	if path != filepath.Join(dir, "config.yaml") {
		t.Fatalf("unexpected path %q", path)
	}
	if _, _, err := runCLI(t, []string{"config", "init"}); err == nil {
		t.Fatalf("expected second init to fail without --force")
	}
	mustEnv(t, "config", "init", "--force")

	shown := mustEnv(t, "config", "show")
	proxy := shown["data"].(map[string]any)["proxy"].(map[string]any)
	if proxy["target"] != "http://127.0.0.1:9999" {
		t.Fatalf("expected env override; got %#v", proxy)
	}
	if proxy["addr"] != ":3000" {
		t.Fatalf("expected default proxy addr; got %#v", proxy)
	}
}

func TestLocalURL(t *testing.T) {
	cases := map[string]string{
		":3000":          "http://localhost:3000",
		"127.0.0.1:3000": "http://127.0.0.1:3000",
	}
	for in, want := range cases {
		if got := localURL(in); got != want {
			t.Fatalf("localURL(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestProjects_ListPages(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	env := mustEnv(t, "projects", "list")
	rows := env["data"].([]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["name"] != "Project Alpha" || first["visibility"] != "public" || first["status"] != "active" {
		t.Fatalf("unexpected first project: %#v", first)
	}
	meta := env["meta"].(map[string]any)
	if meta["pageSize"] != float64(10) || meta["total"] != float64(3) || meta["hasNext"] != false {
		t.Fatalf("unexpected meta: %#v", meta)
	}

	env = mustEnv(t, "projects", "list", "--page", "2", "--page-size", "2")
	rows = env["data"].([]any)
	if len(rows) != 1 || rows[0].(map[string]any)["name"] != "Project Gamma" {
		t.Fatalf("unexpected page 2: %#v", rows)
	}
	meta = env["meta"].(map[string]any)
	if meta["page"] != float64(2) || meta["pages"] != float64(2) || meta["hasPrev"] != true {
		t.Fatalf("unexpected page 2 meta: %#v", meta)
	}
}

func TestProjects_ShowAndAction(t *testing.T) {
	t.Setenv("SCAFFOLDER_CONFIG_DIR", t.TempDir())

	env := mustEnv(t, "projects", "show", "2")
	if env["data"].(map[string]any)["name"] != "Project Beta" {
		t.Fatalf("unexpected project: %#v", env["data"])
	}

	_, stderr, err := runCLI(t, []string{"projects", "show", "42"})
	if err == nil || !strings.Contains(string(stderr), "project not found: 42") {
		t.Fatalf("expected not found, err=%v stderr=%s", err, stderr)
	}

	env = mustEnv(t, "projects", "action", "archive", "1")
	data := env["data"].(map[string]any)
	if data["action"] != "archive" || data["performed"] != false {
		t.Fatalf("unexpected action result: %#v", data)
	}

	_, _, err = runCLI(t, []string{"projects", "action", "rename", "1"})
	if err == nil {
		t.Fatalf("expected unknown action to fail")
	}
}
