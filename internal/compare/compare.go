package compare

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"srcdiff/internal/collect"
	"srcdiff/internal/diag"
	"srcdiff/internal/extract"
	"srcdiff/internal/model"
)

// blockCommentRe matches a /* ... */ comment that opens and closes on the same line.
var blockCommentRe = regexp.MustCompile(`/\*.*?\*/`)

// StripComments removes everything from the first "//" to the end of the line,
// then the first single-line /* ... */ comment of what remains, and trims the
// result. It is purely textual: "//" or "/*" inside string literals count as
// comments, and an unterminated "/*" is left alone.
func StripComments(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	if loc := blockCommentRe.FindStringIndex(line); loc != nil {
		line = line[:loc[0]] + line[loc[1]:]
	}
	return strings.TrimSpace(line)
}

// IsMeaningfulDifference reports whether two lines still differ once comments
// are stripped.
func IsMeaningfulDifference(a, b string) bool {
	return StripComments(a) != StripComments(b)
}

// CompareLines pairs lines by number. A line missing on one side compares as "".
// Entries keep the original text of both sides.
func CompareLines(a, b model.LineMap) []model.LineDiff {
	numbers := make([]int, 0, len(a)+len(b))
	for n := range a {
		numbers = append(numbers, n)
	}
	for n := range b {
		if _, ok := a[n]; !ok {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	var diffs []model.LineDiff
	for _, n := range numbers {
		textA, textB := a[n], b[n]
		if textA == textB || !IsMeaningfulDifference(textA, textB) {
			continue
		}
		diffs = append(diffs, model.LineDiff{Line: n, A: textA, B: textB})
	}
	return diffs
}

// CompareDefines reports macros defined on both sides with different values, in
// the order they are defined in a. Macros defined on one side only are ignored.
func CompareDefines(a, b *model.DefineMap) []model.DefineDiff {
	var diffs []model.DefineDiff
	for _, name := range a.Keys() {
		valueA, _ := a.Get(name)
		valueB, ok := b.Get(name)
		if ok && valueA != valueB {
			diffs = append(diffs, model.DefineDiff{Name: name, A: valueA, B: valueB})
		}
	}
	return diffs
}

// Comparer compares pairs of files with a shared Extractor.
type Comparer struct {
	ex *extract.Extractor
}

// NewComparer returns a Comparer decoding sources with the named encoding.
func NewComparer(encodingName string) (*Comparer, error) {
	ex, err := extract.NewExtractor(encodingName)
	if err != nil {
		return nil, err
	}
	return &Comparer{ex: ex}, nil
}

// CompareFiles extracts both files and compares them. relPath is the
// slash-separated path shared by both files.
func (c *Comparer) CompareFiles(pathA, pathB, relPath string) (model.FileComparison, error) {
	res := model.FileComparison{RelPath: relPath, Name: path.Base(relPath)}

	linesA, definesA, err := c.ex.ExtractFile(pathA)
	if err != nil {
		return res, err
	}
	linesB, definesB, err := c.ex.ExtractFile(pathB)
	if err != nil {
		return res, err
	}

	res.Lines = CompareLines(linesA, linesB)
	res.Defines = CompareDefines(definesA, definesB)
	return res, nil
}

// Run compares the trees named in cfg and returns the report. Roots are
// resolved to absolute paths and labelled with their base names. Common files
// are compared in sorted order; files without differences are left out.
// Any I/O error ends the run.
func Run(ctx context.Context, cfg model.Config, log *diag.Logger) (model.Report, error) {
	var rep model.Report
	if strings.TrimSpace(cfg.RootA) == "" || strings.TrimSpace(cfg.RootB) == "" {
		return rep, errors.New("both trees must be given")
	}

	rootA, err := filepath.Abs(cfg.RootA)
	if err != nil {
		return rep, err
	}
	rootB, err := filepath.Abs(cfg.RootB)
	if err != nil {
		return rep, err
	}
	rep.RootA, rep.RootB = rootA, rootB
	rep.LabelA, rep.LabelB = filepath.Base(rootA), filepath.Base(rootB)

	c, err := NewComparer(cfg.Encoding)
	if err != nil {
		return rep, err
	}

	t := log.Start("collect", rootA+" vs "+rootB)
	files, err := collect.Collect(rootA, rootB)
	if err != nil {
		return rep, fmt.Errorf("collect: %w", err)
	}
	t.Finish("common files", len(files.Common))
	rep.Missing = files.Missing
	rep.Added = files.Added

	t = log.Start("compare", fmt.Sprintf("%d common files", len(files.Common)))
	for _, rel := range files.Common {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		native := filepath.FromSlash(rel)
		fc, err := c.CompareFiles(filepath.Join(rootA, native), filepath.Join(rootB, native), rel)
		if err != nil {
			return rep, fmt.Errorf("compare %s: %w", rel, err)
		}
		if fc.Empty() {
			log.Debugf("%s: no differences", rel)
			continue
		}
		log.Debugf("%s: %d define, %d line differences", rel, len(fc.Defines), len(fc.Lines))
		rep.Files = append(rep.Files, fc)
	}
	t.Finish("files with differences", len(rep.Files))
	return rep, nil
}
