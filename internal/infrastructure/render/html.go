// Package render projects a finalized catalog into the browsable HTML
// catalogue. It never mutates the catalog; the page model is a read-only
// snapshot handed to the template.
package render

import (
	"fmt"
	"html/template"
	"io"

	"ArchiveCatalog/internal/dates"
	"ArchiveCatalog/internal/domain"
)

// VariantView is the per-variant cell of a document row.
type VariantView struct {
	Label        string
	Availability domain.Availability
	File         string
	URL          string
}

// Present reports whether anything at all is known about the variant.
func (v VariantView) Present() bool { return v.Availability != domain.Missing }

// Icon picks the artwork: the plain icon for a confirmed local file, the
// greyed one when only the remote copy is known.
func (v VariantView) Icon() string {
	if v.Availability == domain.LocalFile {
		return v.Label + ".gif"
	}
	return v.Label + "-missing.gif"
}

// Row is one rendered table row.
type Row struct {
	Kind         domain.RecordKind
	Title        string
	SectionTitle string
	URL          string
	Date         string
	PDF          VariantView
	DOC          VariantView
}

// Section reports whether the row is a top-level heading.
func (r Row) Section() bool { return r.Kind == domain.KindSection }

// Subsection reports whether the row is a second-level heading.
func (r Row) Subsection() bool { return r.Kind == domain.KindSubsection }

// Page is the full catalogue handed to the template.
type Page struct {
	Title string
	Rows  []Row
}

// BuildPage walks the catalog once, in insertion order, carrying the most
// recently seen section title so subsection rows can be labelled even
// though the catalog itself is flat.
func BuildPage(title string, cat *domain.Catalog) Page {
	page := Page{Title: title}

	lastSection := ""
	for _, entry := range cat.Entries() {
		row := Row{
			Kind:  entry.Kind,
			Title: entry.Title,
			Date:  dates.Display(entry.Date),
		}

		switch entry.Kind {
		case domain.KindSection:
			lastSection = entry.Title
			row.URL = entry.PdfURL
		case domain.KindSubsection:
			row.SectionTitle = lastSection
			row.URL = entry.PdfURL
		default:
			row.PDF = VariantView{Label: "PDF", Availability: entry.PdfAvailability, File: entry.PdfFile, URL: entry.PdfURL}
			row.DOC = VariantView{Label: "DOC", Availability: entry.DocAvailability, File: entry.DocFile, URL: entry.DocURL}
		}

		page.Rows = append(page.Rows, row)
	}
	return page
}

var pageTemplate = template.Must(template.New("catalog").Parse(`<!DOCTYPE HTML PUBLIC "-//IETF//DTD HTML//EN">
<html>
<head>
<title> {{.Title}} </title>
<style type="text/css">
tr td:nth-child(1) { padding-right: 7pt; padding-left: 3pt; }
tr td:nth-child(3) { padding-right: 3pt; padding-left: 17pt; }
tr td:nth-child(4) { padding-right: 3pt; padding-left: 17pt; }
table tr:nth-child(odd)  td{ background-color: #ffffff; }
table tr:nth-child(even) td{ background-color: #d1f2eb; }
.container { display: flex; justify-content: space-between; }
</style>
</head>
<body bgcolor=#FFFFFF text=#000000>

<h1> {{.Title}} </h1>
<p><hr></p>

<table border=0>
{{range .Rows}}{{if .Section}}<tr align=left bgcolor="d2b48c">
  <th colspan=3> <a id="{{.Title}}" href="{{.URL}}"> {{.Title}} </a> </th>
  <th> (SOC {{.Date}}) </th>
</tr>
<tr style="display:none;"></tr>
{{else if .Subsection}}<tr align=left>
  <th colspan=4 bgcolor="f1c40f"> <a id="{{.Title}}"> {{.SectionTitle}}: {{.Title}} </a> </th>
</tr>
<tr style="display:none;"></tr>
{{else}}<tr valign=top>
  <td> {{.Title}} </td>
{{template "variant" .PDF}}{{template "variant" .DOC}}  <td> {{.Date}} </td>
</tr>
{{end}}{{end}}</table>
</body>
</html>
{{define "variant"}}{{if .Present}}  <td> <a href="{{.File}}"> <img src="{{.Icon}}" alt="{{.Label}} icon" style="width:42px;height:42px;"> </a>
       <a href="{{.URL}}"> <img src="IA.gif" alt="IA icon" style="width:42px;height:42px;"> </a> </td>
{{else}}  <td> ({{.Label}} missing) </td>
{{end}}{{end}}`))

// WriteHTML renders the page to w.
func WriteHTML(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	return nil
}
