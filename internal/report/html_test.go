package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"srcdiff/internal/model"
)

const wantHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>版本差異報告</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h2 { color: #003366; margin-top: 40px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
th, td { border: 1px solid #999; padding: 6px; font-size: 14px; vertical-align: top; }
pre { background: #f8f8f8; padding: 5px; border-radius: 4px; white-space: pre-wrap; word-wrap: break-word; }
</style>
</head>
<body>
<h1>📊 差異報告總覽</h1>
`

func render(t *testing.T, r model.Report, opts Options) string {
	t.Helper()
	b, err := Render(r, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(b)
}

func TestRenderNoDifferences(t *testing.T) {
	got := render(t, model.Report{LabelA: "v1", LabelB: "v2"}, Options{})
	want := wantHead + "<p>🎉 沒有發現任何定義或原始代碼差異。</p></body></html>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDefineOnly(t *testing.T) {
	r := model.Report{
		LabelA: "v1",
		LabelB: "v2",
		Files: []model.FileComparison{{
			RelPath: "inc/conf.h",
			Name:    "conf.h",
			Defines: []model.DefineDiff{{Name: "MAX", A: "10", B: "20"}},
		}},
	}
	got := render(t, r, Options{})
	want := wantHead +
		"<h2>conf.h</h2><h3>🔧 定義差異（#define）</h3>" +
		"<table border='1'><tr><th>參數</th><th>v1</th><th>v2</th></tr>" +
		"<tr><td>MAX</td><td>10</td><td>20</td></tr></table>" +
		"</body></html>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(got, "行號") {
		t.Errorf("source table rendered without line differences")
	}
}

func TestRenderFullReport(t *testing.T) {
	r := model.Report{
		LabelA:  "v1",
		LabelB:  "v2",
		Missing: []string{"inc/gone.h"},
		Added:   []string{"inc/new.h", "src/new.c"},
		Files: []model.FileComparison{
			{RelPath: "a/one.c", Name: "one.c", Lines: []model.LineDiff{{Line: 5, A: "int x = 1;", B: "int x = 2;"}}},
			{RelPath: "b/empty.c", Name: "empty.c"},
			{RelPath: "b/two.c", Name: "two.c", Lines: []model.LineDiff{{Line: 1, A: "", B: "extra();"}}},
		},
	}
	got := render(t, r, Options{})
	want := wantHead +
		"<h2>🚫 v2 缺少以下檔案（v1 有但 v2 沒有）</h2><ul><li>inc/gone.h</li></ul><hr>" +
		"<h2>➕ v2 新增以下檔案（v1 沒有）</h2><ul><li>inc/new.h</li><li>src/new.c</li></ul><hr>" +
		"<h2>one.c</h2><h3>🔍 原始代碼差異（不含註解）</h3>" +
		"<table border='1'><tr><th>行號</th><th>v1</th><th>v2</th></tr>" +
		"<tr><td>5</td><td><pre>int x = 1;</pre></td><td><pre>int x = 2;</pre></td></tr></table>" +
		"<hr>" +
		"<h2>two.c</h2><h3>🔍 原始代碼差異（不含註解）</h3>" +
		"<table border='1'><tr><th>行號</th><th>v1</th><th>v2</th></tr>" +
		"<tr><td>1</td><td><pre></pre></td><td><pre>extra();</pre></td></tr></table>" +
		"</body></html>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderListsWithoutFiles(t *testing.T) {
	r := model.Report{LabelA: "a", LabelB: "b", Missing: []string{"x.c"}}
	got := render(t, r, Options{})
	want := wantHead +
		"<h2>🚫 b 缺少以下檔案（a 有但 b 沒有）</h2><ul><li>x.c</li></ul><hr>" +
		"<p>🎉 沒有發現任何定義或原始代碼差異。</p></body></html>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEscapes(t *testing.T) {
	r := model.Report{
		LabelA:  "<a>",
		LabelB:  "b&b",
		Missing: []string{"<script>.h"},
		Files: []model.FileComparison{{
			Name:    "<b>.h",
			Defines: []model.DefineDiff{{Name: "X", A: `"<1>"`, B: "2"}},
			Lines:   []model.LineDiff{{Line: 1, A: `if (a < b && s == "x")`, B: "y"}},
		}},
	}
	got := render(t, r, Options{})
	for _, raw := range []string{"<a>", "<script>", "<b>.h", `"<1>"`, "a < b"} {
		if strings.Contains(got, raw) {
			t.Errorf("unescaped %q in output", raw)
		}
	}
	for _, esc := range []string{
		"&lt;a&gt;",
		"b&amp;b",
		"&lt;script&gt;.h",
		"<h2>&lt;b&gt;.h</h2>",
		"<pre>if (a &lt; b &amp;&amp; s == &#34;x&#34;)</pre>",
	} {
		if !strings.Contains(got, esc) {
			t.Errorf("missing %q in output", esc)
		}
	}
}

func TestRenderEnglish(t *testing.T) {
	r := model.Report{LabelA: "old", LabelB: "new", Added: []string{"n.c"}}
	got := render(t, r, Options{Lang: "en"})
	for _, s := range []string{
		"<title>Version Difference Report</title>",
		"<h2>➕ new adds these files (absent from old)</h2>",
		"<p>🎉 No definition or source differences were found.</p>",
	} {
		if !strings.Contains(got, s) {
			t.Errorf("missing %q in output", s)
		}
	}
}

func TestRenderUnknownLanguage(t *testing.T) {
	if _, err := Render(model.Report{}, Options{Lang: "tlh"}); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestRenderHighlight(t *testing.T) {
	r := model.Report{
		LabelA: "v1",
		LabelB: "v2",
		Files: []model.FileComparison{{
			Name:  "x.c",
			Lines: []model.LineDiff{{Line: 3, A: "int x = 1;", B: "int x = 2;"}},
		}},
	}
	got := render(t, r, Options{Highlight: true})
	for _, s := range []string{
		"<pre>int x = <del>1</del>;</pre>",
		"<pre>int x = <ins>2</ins>;</pre>",
		"del { background",
	} {
		if !strings.Contains(got, s) {
			t.Errorf("missing %q in output", s)
		}
	}
}

func TestHighlightEscapes(t *testing.T) {
	a, b := highlight("a < b", "a > b")
	if string(a) != "a <del>&lt;</del> b" {
		t.Errorf("left = %q", a)
	}
	if string(b) != "a <ins>&gt;</ins> b" {
		t.Errorf("right = %q", b)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := model.Report{
		LabelA:  "v1",
		LabelB:  "v2",
		Missing: []string{"m.c"},
		Files: []model.FileComparison{{
			Name:    "x.c",
			Defines: []model.DefineDiff{{Name: "A", A: "1", B: "2"}, {Name: "B", A: "3", B: "4"}},
			Lines:   []model.LineDiff{{Line: 1, A: "a", B: "b"}},
		}},
	}
	first := render(t, r, Options{})
	second := render(t, r, Options{})
	if first != second {
		t.Errorf("renders differ")
	}
}
