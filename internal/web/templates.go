// Package web holds the server-rendered HTML views.
package web

import (
	"embed"
	"html/template"
	"strconv"

	"patient-management-service/internal/models"

	"github.com/cockroachdb/apd/v3"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded views with the helpers they rely on.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"text": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"qty": func(d apd.NullDecimal) string {
			if !d.Valid {
				return ""
			}
			n, err := models.QuantityToInt(&d.Decimal)
			if err != nil {
				return d.Decimal.Text('f')
			}
			return strconv.Itoa(n)
		},
		"cost": func(d apd.NullDecimal) string {
			if !d.Valid {
				return ""
			}
			return d.Decimal.Text('f')
		},
	}).ParseFS(files, "templates/*.html"))
}
