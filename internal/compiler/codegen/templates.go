package codegen

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

const (
	tmplModule = "module"
	tmplView   = "view"
	tmplProps  = "props"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var (
	moduleTmpl   *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplModule).
			Funcs(template.FuncMap{"join": strings.Join}).
			ParseFS(templatesFS, "templates/*.tmpl")
		if tmplInitErr != nil {
			return
		}
		for _, name := range []string{tmplModule, tmplView, tmplProps} {
			if t.Lookup(name) == nil {
				tmplInitErr = fmt.Errorf("required template %q not found", name)
				return
			}
		}
		moduleTmpl = t
	})
	return tmplInitErr
}

func render(name string, data any) (string, error) {
	if err := ensureTemplates(); err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := moduleTmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return sb.String(), nil
}
