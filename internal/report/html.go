package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"srcdiff/internal/model"
)

// Options control how a report is rendered.
type Options struct {
	Lang      string // see LookupLocale
	Highlight bool   // mark changed characters inside differing lines
}

// Document is a report broken into sections, ready to render.
type Document struct {
	Title     string
	Banner    string
	Highlight bool
	Sections  []Section
}

type sectionKind int

const (
	listSection sectionKind = iota
	fileSection
	noticeSection
)

// Section is one block of the report body.
type Section struct {
	kind    sectionKind
	Heading string   // list heading
	Paths   []string // list items
	Rule    bool     // file section preceded by <hr>
	File    *FileSection
	Message string // notice text
}

func (s Section) IsList() bool   { return s.kind == listSection }
func (s Section) IsFile() bool   { return s.kind == fileSection }
func (s Section) IsNotice() bool { return s.kind == noticeSection }

// FileSection holds the tables of one file.
type FileSection struct {
	Name           string
	LabelA, LabelB string
	DefinesHeading string
	SourceHeading  string
	KeyColumn      string
	LineColumn     string
	Defines        []model.DefineDiff
	Lines          []Row
}

// Row is a rendered source difference.
type Row struct {
	Line int
	A, B template.HTML
}

// Build lays out r as a Document. Empty lists and files without differences get
// no section; a notice replaces the file sections when there are none.
func Build(r model.Report, opts Options) (*Document, error) {
	loc, ok := LookupLocale(opts.Lang)
	if !ok {
		return nil, fmt.Errorf("unsupported report language %q", opts.Lang)
	}
	doc := &Document{
		Title:     loc.Title,
		Banner:    model.IconOverview + " " + loc.Overview,
		Highlight: opts.Highlight,
	}

	if len(r.Missing) > 0 {
		doc.Sections = append(doc.Sections, Section{
			kind:    listSection,
			Heading: model.IconMissing + " " + fmt.Sprintf(loc.MissingHeading, r.LabelA, r.LabelB),
			Paths:   r.Missing,
		})
	}
	if len(r.Added) > 0 {
		doc.Sections = append(doc.Sections, Section{
			kind:    listSection,
			Heading: model.IconAdded + " " + fmt.Sprintf(loc.AddedHeading, r.LabelA, r.LabelB),
			Paths:   r.Added,
		})
	}

	files := 0
	for _, fc := range r.Files {
		if fc.Empty() {
			continue
		}
		fs := &FileSection{
			Name:           fc.Name,
			LabelA:         r.LabelA,
			LabelB:         r.LabelB,
			DefinesHeading: model.IconDefines + " " + loc.DefinesHeading,
			SourceHeading:  model.IconSource + " " + loc.SourceHeading,
			KeyColumn:      loc.KeyColumn,
			LineColumn:     loc.LineColumn,
			Defines:        fc.Defines,
		}
		for _, ld := range fc.Lines {
			row := Row{Line: ld.Line, A: plain(ld.A), B: plain(ld.B)}
			if opts.Highlight {
				row.A, row.B = highlight(ld.A, ld.B)
			}
			fs.Lines = append(fs.Lines, row)
		}
		doc.Sections = append(doc.Sections, Section{kind: fileSection, Rule: files > 0, File: fs})
		files++
	}
	if files == 0 {
		doc.Sections = append(doc.Sections, Section{
			kind:    noticeSection,
			Message: model.IconClean + " " + loc.NoDifferences,
		})
	}
	return doc, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return pageTmpl.Execute(w, d)
}

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render builds and renders r in one step.
func Render(r model.Report, opts Options) ([]byte, error) {
	doc, err := Build(r, opts)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML + sectionHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h2 { color: #003366; margin-top: 40px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
th, td { border: 1px solid #999; padding: 6px; font-size: 14px; vertical-align: top; }
pre { background: #f8f8f8; padding: 5px; border-radius: 4px; white-space: pre-wrap; word-wrap: break-word; }
{{- if .Highlight}}
del { background: #ffd7d5; text-decoration: none; }
ins { background: #ccffd8; text-decoration: none; }
{{- end}}
</style>
</head>
<body>
<h1>{{.Banner}}</h1>
{{range .Sections}}{{template "section" .}}{{end}}</body></html>`

const sectionHTML = `{{define "section"}}` +
	`{{if .IsList}}<h2>{{.Heading}}</h2><ul>{{range .Paths}}<li>{{.}}</li>{{end}}</ul><hr>{{end}}` +
	`{{if .IsFile}}{{if .Rule}}<hr>{{end}}{{with .File}}<h2>{{.Name}}</h2>` +
	`{{if .Defines}}<h3>{{.DefinesHeading}}</h3>` +
	`<table border='1'><tr><th>{{.KeyColumn}}</th><th>{{.LabelA}}</th><th>{{.LabelB}}</th></tr>` +
	`{{range .Defines}}<tr><td>{{.Name}}</td><td>{{.A}}</td><td>{{.B}}</td></tr>{{end}}</table>{{end}}` +
	`{{if .Lines}}<h3>{{.SourceHeading}}</h3>` +
	`<table border='1'><tr><th>{{.LineColumn}}</th><th>{{.LabelA}}</th><th>{{.LabelB}}</th></tr>` +
	`{{range .Lines}}<tr><td>{{.Line}}</td><td><pre>{{.A}}</pre></td><td><pre>{{.B}}</pre></td></tr>{{end}}</table>{{end}}` +
	`{{end}}{{end}}` +
	`{{if .IsNotice}}<p>{{.Message}}</p>{{end}}` +
	`{{end}}`
