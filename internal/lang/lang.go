// Package lang maps file names to the language the editor highlights them as.
package lang

import "strings"

type Info struct {
	Name       string
	Extensions []string
	// EditorLanguage is the identifier editors and highlighters use (e.g. "typescript").
	EditorLanguage string
}

var languages = []Info{
	{Name: "JavaScript", Extensions: []string{"js", "jsx", "mjs"}, EditorLanguage: "javascript"},
	{Name: "TypeScript", Extensions: []string{"ts", "tsx"}, EditorLanguage: "typescript"},
	{Name: "Python", Extensions: []string{"py", "pyw", "pyc"}, EditorLanguage: "python"},
	{Name: "HTML", Extensions: []string{"html", "htm"}, EditorLanguage: "html"},
	{Name: "CSS", Extensions: []string{"css", "scss", "sass", "less"}, EditorLanguage: "css"},
	{Name: "JSON", Extensions: []string{"json"}, EditorLanguage: "json"},
	{Name: "Markdown", Extensions: []string{"md", "markdown"}, EditorLanguage: "markdown"},
	{Name: "Docker", Extensions: []string{"dockerfile"}, EditorLanguage: "dockerfile"},
	{Name: "YAML", Extensions: []string{"yml", "yaml"}, EditorLanguage: "yaml"},
	{Name: "XML", Extensions: []string{"xml"}, EditorLanguage: "xml"},
	{Name: "SQL", Extensions: []string{"sql"}, EditorLanguage: "sql"},
	{Name: "Plain Text", Extensions: []string{"txt"}, EditorLanguage: "plaintext"},
}

// PlainText is the fallback for unknown or missing extensions.
var PlainText = languages[len(languages)-1]

var byExt = func() map[string]Info {
	m := map[string]Info{}
	for _, l := range languages {
		for _, e := range l.Extensions {
			m[e] = l
		}
	}
	return m
}()

// All returns the known languages, plain text last.
func All() []Info {
	out := make([]Info, len(languages))
	copy(out, languages)
	return out
}

// Detect picks a language from the file's base name. Directory components in
// name are ignored.
func Detect(name string) Info {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if strings.EqualFold(name, "dockerfile") {
		return byExt["dockerfile"]
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return PlainText
	}
	if l, ok := byExt[strings.ToLower(name[i+1:])]; ok {
		return l
	}
	return PlainText
}

func (i Info) IsMarkdown() bool { return i.EditorLanguage == "markdown" }
