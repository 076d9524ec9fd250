package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tabstop/internal/editorconfig"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Print the EditorConfig properties applying to each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(ctx, cmd, args)
		},
	}
}

// fileProperties pairs a target path with its resolved mapping, in the
// order the paths were given on the command line.
type fileProperties struct {
	Path       string                  `json:"path"`
	Properties editorconfig.Properties `json:"properties"`
}

func runResolve(ctx *commandContext, cmd *cobra.Command, args []string) error {
	resolver := editorconfig.New(ctx.loggerValue())

	results := make([]fileProperties, 0, len(args))
	for _, arg := range args {
		target, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path %q: %w", arg, err)
		}
		props, err := resolver.Resolve(target)
		if err != nil {
			return err
		}
		results = append(results, fileProperties{Path: target, Properties: props})
	}

	switch format := effectiveFormat(ctx.outputFormat()); format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), results)
	case "table":
		return writeTables(cmd, results)
	case "plain":
		return writePlain(cmd, results)
	default:
		return fmt.Errorf("output format: unsupported value %q", format)
	}
}

// effectiveFormat maps "auto" onto table for terminals and plain for
// pipes, leaving explicit formats untouched.
func effectiveFormat(format string) string {
	if format != "auto" {
		return format
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "table"
	}
	return "plain"
}

// writePlain prints editorconfig-core style key=value lines, with a
// [path] header per file when more than one file was requested.
func writePlain(cmd *cobra.Command, results []fileProperties) error {
	out := cmd.OutOrStdout()
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "[%s]\n", result.Path)
		}
		for _, key := range sortedKeys(result.Properties) {
			fmt.Fprintf(out, "%s=%s\n", key, result.Properties[key])
		}
	}
	return nil
}

func writeTables(cmd *cobra.Command, results []fileProperties) error {
	out := cmd.OutOrStdout()
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "%s\n", result.Path)
		}
		rows := make([][]string, 0, len(result.Properties))
		for _, key := range sortedKeys(result.Properties) {
			rows = append(rows, []string{key, result.Properties[key]})
		}
		fmt.Fprintln(out, renderTable([]string{"Property", "Value"}, rows))
	}
	return nil
}

func sortedKeys(props editorconfig.Properties) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
