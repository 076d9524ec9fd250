// Package glob implements the EditorConfig glob dialect.
//
// The dialect differs from filepath.Match and from shell globbing:
// "**" spans directory separators, "{a,b}" brace groups may nest other
// glob constructs, "{n..m}" matches integers in an inclusive range, and
// malformed groups degrade to literal text instead of failing the match.
//
// Patterns without a "/" match the base name at any depth. Patterns
// containing a "/" are anchored to the start of the relative path.
// Matching is case-sensitive and operates on "/"-separated paths.
package glob
