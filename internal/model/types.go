package model

// LineMap maps a 1-based line number to the trimmed text of that line.
type LineMap map[int]string

// DefineMap maps macro names to their replacement text, remembering the order in
// which names were first defined.
type DefineMap struct {
	keys   []string
	values map[string]string
}

// NewDefineMap returns an empty DefineMap.
func NewDefineMap() *DefineMap {
	return &DefineMap{values: map[string]string{}}
}

// Set records a definition. Redefining a name replaces its value but keeps the
// position of the first definition.
func (d *DefineMap) Set(name, value string) {
	if _, ok := d.values[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.values[name] = value
}

// Get returns the value for name and whether it was defined.
func (d *DefineMap) Get(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[name]
	return v, ok
}

// Keys returns the macro names in definition order.
func (d *DefineMap) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *DefineMap) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// LineDiff is a line whose text differs between the two trees after comments are
// ignored. A and B hold the original, unstripped text ("" when the line is absent).
type LineDiff struct {
	Line int    `json:"line"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// DefineDiff is a macro defined in both files with different values.
type DefineDiff struct {
	Name string `json:"name"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// FileComparison holds the differences found for one common file.
type FileComparison struct {
	RelPath string       `json:"rel_path"` // posix-style path relative to both roots
	Name    string       `json:"name"`     // bare file name used as the section header
	Defines []DefineDiff `json:"defines,omitempty"`
	Lines   []LineDiff   `json:"lines,omitempty"`
}

// Empty reports whether the comparison found nothing worth rendering.
func (f FileComparison) Empty() bool {
	return len(f.Defines) == 0 && len(f.Lines) == 0
}

// Report is the result of comparing two trees.
type Report struct {
	LabelA  string           `json:"label_a"`
	LabelB  string           `json:"label_b"`
	RootA   string           `json:"root_a"`
	RootB   string           `json:"root_b"`
	Missing []string         `json:"missing"` // in A, not in B
	Added   []string         `json:"added"`   // in B, not in A
	Files   []FileComparison `json:"files"`
}

// Clean reports whether the two trees hold the same files with no differences.
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Added) == 0 && len(r.Files) == 0
}

// Config is everything a run needs. The CLI fills it from flags and prompts.
type Config struct {
	RootA     string // first tree
	RootB     string // second tree
	Output    string // report base name; ".html" is appended
	Lang      string // report wording: "zh-TW" (default) or "en"
	Encoding  string // source encoding name, "" for UTF-8
	Highlight bool   // mark changed characters inside differing lines
}

// OutputPath returns the report file name for the configured base name.
func (c Config) OutputPath() string {
	return c.Output + ".html"
}
