// Package config loads and validates tabstop's own configuration.
//
// This is the tool's configuration, not the .editorconfig data it
// resolves: output format selection and logging knobs. Settings come from
// an explicit --config path, ~/.config/tabstop/config.toml, or a
// project-local tabstop.toml, with repository defaults filling the gaps.
package config
