package report

import (
	"html/template"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// plain escapes text for a <pre> cell.
func plain(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

// highlight returns both sides of a line with the characters removed from a
// wrapped in <del> and those added in b wrapped in <ins>. All text is escaped.
func highlight(a, b string) (template.HTML, template.HTML) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var left, right strings.Builder
	for _, d := range diffs {
		text := template.HTMLEscapeString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			left.WriteString(text)
			right.WriteString(text)
		case diffmatchpatch.DiffDelete:
			left.WriteString("<del>" + text + "</del>")
		case diffmatchpatch.DiffInsert:
			right.WriteString("<ins>" + text + "</ins>")
		}
	}
	return template.HTML(left.String()), template.HTML(right.String())
}
