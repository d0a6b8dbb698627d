package output

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/yuin/goldmark"
)

//go:embed templates/*
var templates embed.FS

var mdTemplate = template.Must(template.New("dashboard.md").
	Funcs(template.FuncMap{"pct": Percent, "md": escapeMarkdown}).
	ParseFS(templates, "templates/dashboard.md"))

// Markdown renders the dashboard as a Markdown document.
func Markdown(d models.Dashboard) (string, error) {
	var b strings.Builder
	if err := mdTemplate.Execute(&b, d); err != nil {
		return "", fmt.Errorf("execute markdown template: %w", err)
	}
	return b.String(), nil
}

// Terminal renders Markdown for an ANSI terminal, wrapped at width columns.
func Terminal(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}
	return r.Render(md)
}

// MarkdownToHTML converts a Markdown document into a standalone HTML page.
func MarkdownToHTML(md string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head><meta charset=\"utf-8\"><title>")
	page.WriteString(Title)
	page.WriteString("</title></head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
