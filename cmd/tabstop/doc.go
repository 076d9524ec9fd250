// Package main hosts the tabstop CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves EditorConfig properties for the
// files named on the command line and renders them as plain key=value
// lines, a table, or JSON. It centralizes tool configuration loading and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Resolution itself lives in internal/editorconfig; this package only
// surfaces it through commands and flags.
package main
