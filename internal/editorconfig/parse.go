package editorconfig

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"

	"tabstop/internal/logging"
)

// ConfigFileName is the file name consulted in every directory.
const ConfigFileName = ".editorconfig"

// Section pairs a glob pattern with the property assignments declared
// under it. The preamble before the first [pattern] line is carried as a
// section with an empty pattern, which matches every path.
type Section struct {
	Pattern    string
	Properties map[string]string
}

// File is the parsed form of one .editorconfig file. Sections appear in
// file order; later sections override earlier ones during merging.
type File struct {
	Sections []Section
	Root     bool
}

// Keys whose values are case-insensitive and lowercased at parse time.
// Unknown keys keep their value's original casing.
var lowercasedKeys = map[string]bool{
	"root":                     true,
	"indent_style":             true,
	"indent_size":              true,
	"tab_width":                true,
	"end_of_line":              true,
	"charset":                  true,
	"trim_trailing_whitespace": true,
	"insert_final_newline":     true,
	"max_line_length":          true,
}

// Parse reads the INI-like content of one .editorconfig file. The parser
// is deliberately permissive: blank lines, comments, unterminated section
// headers, and lines without "=" are skipped, never reported. One bad
// line must not take down a whole project's formatting.
func Parse(content []byte) File {
	return parse(content, logging.NewNop())
}

// parse is Parse with a logger that records the lines the permissive
// grammar skips. Lines are read through bufio.Reader so an over-long
// line never cuts off the remainder of the file.
func parse(content []byte, logger *slog.Logger) File {
	var parsed File
	current := Section{Properties: map[string]string{}}
	preamble := true

	reader := bufio.NewReader(bytes.NewReader(content))
	for lineNo := 1; ; lineNo++ {
		raw, readErr := reader.ReadString('\n')
		line := strings.TrimSpace(raw)

		switch {
		case line == "" || line[0] == '#' || line[0] == ';':
			// Blank or comment.

		case line[0] == '[':
			if !strings.HasSuffix(line, "]") {
				logger.Warn("ignoring unterminated section header", "line", lineNo)
				break
			}
			parsed.Sections = append(parsed.Sections, current)
			// "[" and "]" are legal inside section names, so the
			// pattern is everything between the outermost brackets.
			current = Section{
				Pattern:    line[1 : len(line)-1],
				Properties: map[string]string{},
			}
			preamble = false

		default:
			eq := strings.IndexByte(line, '=')
			if eq < 0 {
				logger.Debug("ignoring line without assignment", "line", lineNo)
				break
			}
			key := strings.ToLower(strings.TrimSpace(line[:eq]))
			if key == "" {
				logger.Debug("ignoring assignment with empty key", "line", lineNo)
				break
			}
			value := strings.TrimSpace(line[eq+1:])
			if lowercasedKeys[key] {
				value = strings.ToLower(value)
			}

			// root is a file-scoped marker when declared before any
			// section, not a property.
			if preamble && key == "root" {
				parsed.Root = value == "true"
				break
			}
			current.Properties[key] = value
		}

		if readErr != nil {
			break
		}
	}

	parsed.Sections = append(parsed.Sections, current)
	return parsed
}
