package report

import "strings"

// Locale holds the wording of a report.
type Locale struct {
	Title          string
	Overview       string
	MissingHeading string // fmt format: %[1]s is label A, %[2]s label B
	AddedHeading   string // same arguments as MissingHeading
	DefinesHeading string
	SourceHeading  string
	KeyColumn      string
	LineColumn     string
	NoDifferences  string
	Written        string // console confirmation, the output path follows directly
}

var locales = map[string]Locale{
	"zh-tw": {
		Title:          "版本差異報告",
		Overview:       "差異報告總覽",
		MissingHeading: "%[2]s 缺少以下檔案（%[1]s 有但 %[2]s 沒有）",
		AddedHeading:   "%[2]s 新增以下檔案（%[1]s 沒有）",
		DefinesHeading: "定義差異（#define）",
		SourceHeading:  "原始代碼差異（不含註解）",
		KeyColumn:      "參數",
		LineColumn:     "行號",
		NoDifferences:  "沒有發現任何定義或原始代碼差異。",
		Written:        "差異報告已產出：",
	},
	"en": {
		Title:          "Version Difference Report",
		Overview:       "Difference Report Overview",
		MissingHeading: "%[2]s is missing these files (present in %[1]s, absent from %[2]s)",
		AddedHeading:   "%[2]s adds these files (absent from %[1]s)",
		DefinesHeading: "Definition differences (#define)",
		SourceHeading:  "Source differences (comments ignored)",
		KeyColumn:      "Macro",
		LineColumn:     "Line",
		NoDifferences:  "No definition or source differences were found.",
		Written:        "Difference report written: ",
	},
}

// DefaultLang is used when no language is configured.
const DefaultLang = "zh-TW"

// LookupLocale returns the wording for lang ("zh-TW" or "en", case-insensitive;
// "" selects DefaultLang) and whether it is known.
func LookupLocale(lang string) (Locale, bool) {
	key := strings.ToLower(strings.TrimSpace(lang))
	if key == "" {
		key = strings.ToLower(DefaultLang)
	}
	l, ok := locales[key]
	return l, ok
}
