// Package editorconfig resolves formatting properties for a file by
// discovering .editorconfig files along the directory chain from the
// file's directory up to the filesystem root.
//
// Discovered files are merged outermost-first so that sections in closer
// files override those further up, and a file declaring root=true stops
// the upward search. The result is a flat Properties mapping plus typed
// accessors for the well-known keys.
//
// Resolution is stateless: every call re-reads the filesystem and nothing
// is cached, so a Resolver is safe for concurrent use.
package editorconfig
