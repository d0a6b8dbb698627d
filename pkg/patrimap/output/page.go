package output

import (
	htmltemplate "html/template"
	"io"
	"slices"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
)

// Title is the heading shared by every rendition.
const Title = "Mapa Patrimonial: Dono → Empresa → Imóveis"

var pageTemplate = htmltemplate.Must(htmltemplate.New("page.html").
	Funcs(htmltemplate.FuncMap{
		"pct":      Percent,
		"selected": slices.Contains[[]string, string],
	}).
	ParseFS(templates, "templates/page.html"))

// Page is the data behind the interactive dashboard page.
type Page struct {
	Title     string
	Dashboard models.Dashboard
}

// WritePage renders the interactive dashboard page.
func WritePage(w io.Writer, d models.Dashboard) error {
	return pageTemplate.Execute(w, Page{Title: Title, Dashboard: d})
}
