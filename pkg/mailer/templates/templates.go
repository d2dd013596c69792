package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

// Welcome is the one template the review site sends today.
const Welcome = "welcome"

// SubjectFor maps a template name to its email subject line.
func SubjectFor(name string) string {
	switch name {
	case Welcome:
		return "Welcome to Cosme Review"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with data into an HTML body.
func RenderHTML(name string, data map[string]any) (string, error) {
	t, err := htmpl.ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
