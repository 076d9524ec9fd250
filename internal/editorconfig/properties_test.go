package editorconfig

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestBool(t *testing.T) {
	props := Properties{
		"trim_trailing_whitespace": "true",
		"insert_final_newline":     "False",
		"shouty":                   "TRUE",
		"bad":                      "yes",
		"cancelled":                "unset",
	}

	if v, ok := props.Bool("trim_trailing_whitespace"); !ok || !v {
		t.Fatalf("trim_trailing_whitespace = %v, %v", v, ok)
	}
	if v, ok := props.Bool("insert_final_newline"); !ok || v {
		t.Fatalf("insert_final_newline = %v, %v", v, ok)
	}
	if v, ok := props.Bool("shouty"); !ok || !v {
		t.Fatalf("bool literals are case-insensitive: %v, %v", v, ok)
	}
	if _, ok := props.Bool("bad"); ok {
		t.Fatal("non-boolean value must be absent")
	}
	if _, ok := props.Bool("cancelled"); ok {
		t.Fatal("unset must be absent")
	}
	if _, ok := props.Bool("missing"); ok {
		t.Fatal("missing key must be absent")
	}
}

func TestIndentSize(t *testing.T) {
	cases := []struct {
		name  string
		props Properties
		want  int
		ok    bool
	}{
		{"plain", Properties{"indent_size": "4"}, 4, true},
		{"tab falls back to tab_width", Properties{"indent_size": "tab", "tab_width": "8"}, 8, true},
		{"tab without tab_width", Properties{"indent_size": "tab"}, 0, false},
		{"tab_width alone", Properties{"tab_width": "2"}, 2, true},
		{"indent_size beats tab_width", Properties{"indent_size": "4", "tab_width": "8"}, 4, true},
		{"non-integer", Properties{"indent_size": "wide"}, 0, false},
		{"unset", Properties{"indent_size": "unset"}, 0, false},
		{"absent", Properties{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.props.IndentSize()
			if got != tc.want || ok != tc.ok {
				t.Fatalf("IndentSize() = %d, %v, want %d, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMaxLineLength(t *testing.T) {
	if got, ok := (Properties{"max_line_length": "100"}).MaxLineLength(); !ok || got != 100 {
		t.Fatalf("MaxLineLength = %d, %v", got, ok)
	}
	if _, ok := (Properties{"max_line_length": "off"}).MaxLineLength(); ok {
		t.Fatal("non-integer must be absent")
	}
	if _, ok := (Properties{}).MaxLineLength(); ok {
		t.Fatal("missing key must be absent")
	}
}

func TestLineEnding(t *testing.T) {
	cases := []struct {
		value string
		want  LineEnding
		ok    bool
	}{
		{"lf", LF, true},
		{"crlf", CRLF, true},
		{"cr", CR, true},
		{"native", "", false},
		{"unset", "", false},
	}
	for _, tc := range cases {
		got, ok := (Properties{"end_of_line": tc.value}).LineEnding()
		if got != tc.want || ok != tc.ok {
			t.Errorf("LineEnding(%q) = %q, %v, want %q, %v", tc.value, got, ok, tc.want, tc.ok)
		}
	}

	if LF.String() != "lf" || CRLF.String() != "crlf" || CR.String() != "cr" {
		t.Fatal("LineEnding.String spelling mismatch")
	}
}

func TestCharset(t *testing.T) {
	for _, valid := range []string{"latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le"} {
		if got, ok := (Properties{"charset": valid}).Charset(); !ok || got != valid {
			t.Errorf("Charset(%q) = %q, %v", valid, got, ok)
		}
	}
	if _, ok := (Properties{"charset": "koi8-r"}).Charset(); ok {
		t.Fatal("unknown charset must be absent")
	}
}

func TestCharsetEncoding(t *testing.T) {
	enc, ok := (Properties{"charset": "latin1"}).CharsetEncoding()
	if !ok || enc != charmap.ISO8859_1 {
		t.Fatalf("latin1 encoding = %v, %v", enc, ok)
	}

	enc, ok = (Properties{"charset": "utf-16le"}).CharsetEncoding()
	if !ok || enc == nil {
		t.Fatal("utf-16le must yield an encoding")
	}
	// Round-trip a string through the declared encoding.
	encoded, err := enc.NewEncoder().String("héllo")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := enc.NewDecoder().String(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "héllo" {
		t.Fatalf("round trip = %q", decoded)
	}

	if _, ok := (Properties{}).CharsetEncoding(); ok {
		t.Fatal("missing charset must be absent")
	}
}
