package editorconfig

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Properties is the flat mapping produced by resolution: lowercase
// property names to raw string values. Typed interpretation happens only
// in the accessors below; a missing or unusable value is reported as
// absent, leaving the caller's own default in effect.
type Properties map[string]string

// UnsetValue is the property value editors use to cancel a setting
// inherited from an outer file. Accessors treat it as absent.
const UnsetValue = "unset"

func (p Properties) lookup(key string) (string, bool) {
	value, ok := p[key]
	if !ok || strings.EqualFold(value, UnsetValue) {
		return "", false
	}
	return value, true
}

// Bool interprets the value under key as a boolean. The literals "true"
// and "false" are recognized case-insensitively.
func (p Properties) Bool(key string) (bool, bool) {
	value, ok := p.lookup(key)
	if !ok {
		return false, false
	}
	switch strings.ToLower(value) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// IndentSize returns the indentation width. When indent_size is "tab" the
// value of tab_width applies instead, per the EditorConfig property spec.
func (p Properties) IndentSize() (int, bool) {
	if value, ok := p.lookup("indent_size"); ok && value != "tab" {
		return parseInt(value)
	}
	if value, ok := p.lookup("tab_width"); ok {
		return parseInt(value)
	}
	return 0, false
}

// MaxLineLength returns the max_line_length property as an integer.
func (p Properties) MaxLineLength() (int, bool) {
	value, ok := p.lookup("max_line_length")
	if !ok {
		return 0, false
	}
	return parseInt(value)
}

// LineEnding is a newline style, valued as the characters written to disk.
type LineEnding string

// Newline styles recognized in the end_of_line property.
const (
	CR   LineEnding = "\r"
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// String returns the configuration-file spelling: "cr", "lf", or "crlf".
func (le LineEnding) String() string {
	switch le {
	case CR:
		return "cr"
	case CRLF:
		return "crlf"
	default:
		return "lf"
	}
}

// LineEnding maps the end_of_line property onto the LineEnding enumeration.
func (p Properties) LineEnding() (LineEnding, bool) {
	value, ok := p.lookup("end_of_line")
	if !ok {
		return "", false
	}
	switch value {
	case "cr":
		return CR, true
	case "lf":
		return LF, true
	case "crlf":
		return CRLF, true
	}
	return "", false
}

// Charset returns the charset property when it names one of the five
// character sets EditorConfig defines.
func (p Properties) Charset() (string, bool) {
	value, ok := p.lookup("charset")
	if !ok {
		return "", false
	}
	switch value {
	case "latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le":
		return value, true
	}
	return "", false
}

// CharsetEncoding returns a decoder for the charset property, so callers
// can read file contents in the declared encoding.
func (p Properties) CharsetEncoding() (encoding.Encoding, bool) {
	name, ok := p.Charset()
	if !ok {
		return nil, false
	}
	switch name {
	case "latin1":
		return charmap.ISO8859_1, true
	case "utf-8":
		return unicode.UTF8, true
	case "utf-8-bom":
		return unicode.UTF8BOM, true
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), true
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), true
	}
	return nil, false
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
