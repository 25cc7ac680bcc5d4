package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"srcdiff/internal/model"
)

// defineRe matches an object-like macro: `#define NAME value`. Word and space
// classes are Unicode-aware. A name glued to "(" (function-like macro) or a define
// without a value does not match and is left out of the define map.
var defineRe = regexp.MustCompile(`^#define[\t\n\v\f\r\x1c-\x1f\x85\pZ]+([\pL\pN_]+)[\t\n\v\f\r\x1c-\x1f\x85\pZ]+(.+)`)

// Extractor turns source files into line and define maps.
type Extractor struct {
	enc encoding.Encoding
}

// NewExtractor returns an Extractor decoding files with the named encoding.
// An empty name means UTF-8. Names follow the WHATWG encoding labels
// ("big5", "gbk", "shift_jis", "windows-1252", ...).
func NewExtractor(encodingName string) (*Extractor, error) {
	name := strings.TrimSpace(encodingName)
	if name == "" {
		return &Extractor{enc: unicode.UTF8}, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}
	return &Extractor{enc: enc}, nil
}

// ExtractFile reads path and returns its line map and define map.
// Undecodable bytes become U+FFFD; read errors are returned unchanged.
func (e *Extractor) ExtractFile(path string) (model.LineMap, *model.DefineMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	text, err := e.decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	lines, defines := ExtractText(text)
	return lines, defines, nil
}

func (e *Extractor) decode(raw []byte) (string, error) {
	enc := e.enc
	if enc == nil {
		enc = unicode.UTF8
	}
	b, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		// Some decoders pass ASCII-compatible bytes through untouched.
		return strings.ToValidUTF8(string(b), "\uFFFD"), nil
	}
	return string(b), nil
}

// ExtractText builds the line map and define map for already decoded text.
func ExtractText(text string) (model.LineMap, *model.DefineMap) {
	lines := model.LineMap{}
	defines := model.NewDefineMap()
	for i, line := range SplitLines(text) {
		trimmed := strings.TrimSpace(line)
		lines[i+1] = trimmed
		if key, value, ok := ParseDefine(trimmed); ok {
			defines.Set(key, value)
		}
	}
	return lines, defines
}

// ParseDefine reports whether a trimmed line defines an object-like macro and,
// if so, returns its name and trimmed value.
func ParseDefine(trimmed string) (key, value string, ok bool) {
	if !strings.HasPrefix(trimmed, "#define") {
		return "", "", false
	}
	m := defineRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// SplitLines splits text at every line boundary: \n, \r\n, \r, \v, \f, the
// file/group/record separators, NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
// A trailing boundary does not produce an extra empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\r':
			lines = append(lines, text[start:i])
			i += size
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
			continue
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, text[start:i])
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
