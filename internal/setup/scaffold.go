package setup

import (
	"fmt"
	"strings"

	"scaffolder/internal/tree"
)

type starter struct {
	dir   string
	files [][2]string
}

// Starter files per technology. Files land under dir (root when empty).
var starters = map[string]starter{
	"Java": {dir: "src/main/java", files: [][2]string{
		{"Main.java", "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello\");\n    }\n}\n"},
	}},
	"Python": {dir: "src", files: [][2]string{
		{"main.py", "print(\"Hello\")\n"},
		{"requirements.txt", ""},
	}},
	"JavaScript": {files: [][2]string{
		{"package.json", "{\n  \"name\": \"%s\",\n  \"version\": \"0.1.0\"\n}\n"},
		{"index.js", "console.log(\"Hello\");\n"},
	}},
	"HTML": {dir: "public", files: [][2]string{
		{"index.html", "<!doctype html>\n<title>%s</title>\n"},
	}},
	"C++": {dir: "src", files: [][2]string{
		{"main.cpp", "#include <iostream>\n\nint main() {\n    std::cout << \"Hello\" << std::endl;\n}\n"},
	}},
	"C#": {dir: "src", files: [][2]string{
		{"Program.cs", "System.Console.WriteLine(\"Hello\");\n"},
	}},
	"Docker": {files: [][2]string{
		{"Dockerfile", "FROM alpine:3\n"},
	}},
	"Maven": {files: [][2]string{
		{"pom.xml", "<project>\n  <modelVersion>4.0.0</modelVersion>\n  <artifactId>%s</artifactId>\n</project>\n"},
	}},
	"Make": {files: [][2]string{
		{"Makefile", "all:\n\t@echo build\n"},
	}},
	"CMake": {files: [][2]string{
		{"CMakeLists.txt", "cmake_minimum_required(VERSION 3.20)\nproject(%s)\n"},
	}},
}

// Scaffold builds the starter tree for p: a README plus the files of every
// selected technology. When two technologies want the same file the first
// selected one wins.
func Scaffold(p Project) (*tree.Tree, error) {
	root := &dirSpec{}
	readme := fmt.Sprintf("# %s\n\n%s\n", p.Name, p.Description)
	if len(p.Technologies) > 0 {
		readme += "\nBuilt with: " + strings.Join(p.Technologies, ", ") + "\n"
	}
	root.put("", "README.md", readme)

	slug := slugify(p.Name)
	for _, t := range p.Technologies {
		st, ok := starters[t]
		if !ok {
			return nil, fmt.Errorf("%s: %w", t, ErrUnknownTech)
		}
		for _, f := range st.files {
			content := f[1]
			if strings.Contains(content, "%s") {
				content = fmt.Sprintf(content, slug)
			}
			root.put(st.dir, f[0], content)
		}
	}

	b := tree.NewBuilder()
	root.build(b)
	return b.Tree()
}

type dirSpec struct {
	order []string
	files map[string]string
	dirs  map[string]*dirSpec
}

func (d *dirSpec) put(dir, name, content string) {
	cur := d
	if dir != "" {
		for _, part := range strings.Split(dir, "/") {
			cur = cur.subdir(part)
		}
	}
	if cur.files == nil {
		cur.files = map[string]string{}
	}
	if _, exists := cur.files[name]; exists {
		return
	}
	cur.files[name] = content
	cur.order = append(cur.order, name)
}

func (d *dirSpec) subdir(name string) *dirSpec {
	if d.dirs == nil {
		d.dirs = map[string]*dirSpec{}
	}
	if sub, ok := d.dirs[name]; ok {
		return sub
	}
	sub := &dirSpec{}
	d.dirs[name] = sub
	d.order = append(d.order, name)
	return sub
}

func (d *dirSpec) build(b *tree.Builder) {
	for _, name := range d.order {
		if sub, ok := d.dirs[name]; ok {
			b.Dir(name, sub.build)
			continue
		}
		b.File(name, d.files[name])
	}
}

func slugify(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(sb.String(), "-")
	if s == "" {
		return "project"
	}
	return s
}
