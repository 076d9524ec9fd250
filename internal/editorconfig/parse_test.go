package editorconfig

import (
	"bytes"
	"strings"
	"testing"

	"tabstop/internal/logging"
)

func TestParseSections(t *testing.T) {
	content := `
root = true

[*]
indent_style = space
indent_size = 2

[*.py]
indent_size = 4
`
	parsed := Parse([]byte(content))

	if !parsed.Root {
		t.Fatal("expected root=true")
	}
	if len(parsed.Sections) != 3 {
		t.Fatalf("sections = %d, want 3 (preamble + 2)", len(parsed.Sections))
	}
	if parsed.Sections[0].Pattern != "" {
		t.Fatalf("first section should be the preamble, got pattern %q", parsed.Sections[0].Pattern)
	}
	if len(parsed.Sections[0].Properties) != 0 {
		t.Fatalf("root must not appear as a preamble property: %v", parsed.Sections[0].Properties)
	}

	star := parsed.Sections[1]
	if star.Pattern != "*" {
		t.Fatalf("pattern = %q, want *", star.Pattern)
	}
	if star.Properties["indent_style"] != "space" || star.Properties["indent_size"] != "2" {
		t.Fatalf("unexpected properties: %v", star.Properties)
	}

	if parsed.Sections[2].Pattern != "*.py" {
		t.Fatalf("pattern = %q, want *.py", parsed.Sections[2].Pattern)
	}
}

func TestParseCommentsAndBlanks(t *testing.T) {
	content := `
# a comment
; another comment

[*]
# not = a property
indent_style = tab
`
	parsed := Parse([]byte(content))
	section := parsed.Sections[1]
	if len(section.Properties) != 1 || section.Properties["indent_style"] != "tab" {
		t.Fatalf("comments leaked into properties: %v", section.Properties)
	}
}

func TestParseCaseFolding(t *testing.T) {
	content := `
[*]
Indent_Style = SPACE
CHARSET = UTF-8
MyCustomKey = KeepMyCase
`
	parsed := Parse([]byte(content))
	props := parsed.Sections[1].Properties

	if props["indent_style"] != "space" {
		t.Fatalf("well-known value not lowercased: %v", props)
	}
	if props["charset"] != "utf-8" {
		t.Fatalf("charset not lowercased: %v", props)
	}
	if props["mycustomkey"] != "KeepMyCase" {
		t.Fatalf("unknown key's value must keep its casing: %v", props)
	}
}

func TestParseLastAssignmentWins(t *testing.T) {
	content := `
[*]
indent_size = 2
indent_size = 4
`
	parsed := Parse([]byte(content))
	if got := parsed.Sections[1].Properties["indent_size"]; got != "4" {
		t.Fatalf("indent_size = %q, want 4 (later assignment wins)", got)
	}
}

func TestParseMalformedLinesIgnored(t *testing.T) {
	content := `
[*]
this line has no equals sign
[unclosed section
= empty key
indent_style = tab
`
	parsed := Parse([]byte(content))
	if len(parsed.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 (malformed header ignored)", len(parsed.Sections))
	}
	props := parsed.Sections[1].Properties
	if len(props) != 1 || props["indent_style"] != "tab" {
		t.Fatalf("malformed lines leaked: %v", props)
	}
}

func TestParseRootVariants(t *testing.T) {
	cases := []struct {
		content string
		want    bool
	}{
		{"root = true", true},
		{"root = TRUE", true},
		{"Root = True", true},
		{"root = false", false},
		{"root = yes", false},
		{"[*]\nroot = true", false}, // only the preamble is file-scoped
		{"", false},
	}
	for _, tc := range cases {
		if got := Parse([]byte(tc.content)).Root; got != tc.want {
			t.Errorf("Parse(%q).Root = %v, want %v", tc.content, got, tc.want)
		}
	}
}

func TestParsePreambleProperties(t *testing.T) {
	content := `
root = true
insert_final_newline = true

[*]
indent_style = space
`
	parsed := Parse([]byte(content))
	preamble := parsed.Sections[0]
	if preamble.Pattern != "" {
		t.Fatalf("preamble pattern = %q, want empty", preamble.Pattern)
	}
	if preamble.Properties["insert_final_newline"] != "true" {
		t.Fatalf("preamble properties lost: %v", preamble.Properties)
	}
	if _, ok := preamble.Properties["root"]; ok {
		t.Fatal("root must not be stored as a property")
	}
}

func TestParseBracketsInsideSectionName(t *testing.T) {
	parsed := Parse([]byte("[[a]b].py]\nk = v"))
	if got := parsed.Sections[1].Pattern; got != "[a]b].py" {
		t.Fatalf("pattern = %q, want %q", got, "[a]b].py")
	}
}

func TestParseSurvivesLongLines(t *testing.T) {
	// A comment far beyond bufio's default 64 KiB token size must not
	// swallow the sections that follow it.
	content := "# " + strings.Repeat("x", 70*1024) + "\n[*]\nindent_style = space\n"
	parsed := Parse([]byte(content))

	if len(parsed.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 (preamble + [*])", len(parsed.Sections))
	}
	if got := parsed.Sections[1].Properties["indent_style"]; got != "space" {
		t.Fatalf("indent_style = %q, want space", got)
	}

	longValue := strings.Repeat("y", 70*1024)
	parsed = Parse([]byte("[*]\ncustom = " + longValue + "\nindent_size = 4\n"))
	section := parsed.Sections[1]
	if section.Properties["custom"] != longValue {
		t.Fatalf("long value truncated to %d bytes", len(section.Properties["custom"]))
	}
	if section.Properties["indent_size"] != "4" {
		t.Fatalf("properties after long value lost: %v", section.Properties)
	}
}

func TestParseLogsSkippedLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	content := "[*.py\nnot an assignment\n= orphan value\n[*]\nindent_style = tab\n"
	parsed := parse([]byte(content), logger)

	if got := parsed.Sections[1].Properties["indent_style"]; got != "tab" {
		t.Fatalf("good section lost: %v", parsed.Sections)
	}
	out := buf.String()
	for _, want := range []string{
		"ignoring unterminated section header",
		"ignoring line without assignment",
		"ignoring assignment with empty key",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}
