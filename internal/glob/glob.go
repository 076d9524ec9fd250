package glob

import "strings"

// Match reports whether the relative path matches the EditorConfig pattern.
//
// The path uses "/" as separator; backslashes are normalized before
// matching so Windows-style input behaves. An empty pattern matches every
// path. A pattern without a separator matches the base name at any depth;
// a pattern containing a separator is anchored to the start of the path.
func Match(pattern, path string) bool {
	if pattern == "" {
		return true
	}

	path = strings.ReplaceAll(path, `\`, "/")
	path = "/" + strings.TrimPrefix(path, "/")

	// Anchoring mirrors editorconfig-core: a leading "/" or any interior
	// separator pins the pattern to the config file's directory, a bare
	// name floats to any depth.
	switch {
	case strings.HasPrefix(pattern, "/"):
	case strings.Contains(pattern, "/"):
		pattern = "/" + pattern
	default:
		pattern = "**/" + pattern
	}

	return match(compile(pattern), path)
}
