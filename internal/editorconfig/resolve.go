package editorconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tabstop/internal/glob"
	"tabstop/internal/logging"
)

// ErrNotAbsolute indicates the caller passed a relative target path.
// Guessing a base directory would silently resolve against the wrong
// configuration, so this fails fast instead.
var ErrNotAbsolute = errors.New("target path must be absolute")

// Resolver resolves EditorConfig properties for target files. It holds no
// cross-call state; a single Resolver may be shared by concurrent callers.
type Resolver struct {
	logger *slog.Logger
}

// New creates a resolver. A nil logger disables logging.
func New(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logging.NewComponentLogger(logger, "editorconfig")}
}

// Resolve is a convenience wrapper around New(nil).Resolve.
func Resolve(target string) (Properties, error) {
	return New(nil).Resolve(target)
}

// Resolve returns the merged properties applying to the target file. The
// target must be absolute but does not need to exist. A target with no
// applicable configuration resolves to an empty mapping, not an error.
func (r *Resolver) Resolve(target string) (Properties, error) {
	if !filepath.IsAbs(target) {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, target)
	}
	target = filepath.Clean(target)

	chain, err := r.discover(target)
	if err != nil {
		return nil, err
	}

	resolved := Properties{}
	for _, cf := range chain {
		rel, err := filepath.Rel(cf.dir, target)
		if err != nil {
			// cf.dir is always an ancestor of target; a failure here
			// means the walk itself is broken.
			return nil, fmt.Errorf("relativize %s against %s: %w", target, cf.dir, err)
		}
		rel = filepath.ToSlash(rel)

		for _, section := range cf.file.Sections {
			if !glob.Match(section.Pattern, rel) {
				continue
			}
			for key, value := range section.Properties {
				if key == "root" {
					continue
				}
				resolved[key] = value
			}
		}
	}
	return resolved, nil
}

// configFile is one discovered .editorconfig, identified by its directory.
type configFile struct {
	dir  string
	file File
}

// discover ascends from the target's directory to the filesystem root and
// parses every .editorconfig found along the way. The chain is returned
// outermost-first so later merge steps make closer files win. A file
// declaring root=true ends the ascent.
func (r *Resolver) discover(target string) ([]configFile, error) {
	var chain []configFile

	dir := filepath.Dir(target)
	for {
		path := filepath.Join(dir, ConfigFileName)
		content, err := readConfig(path)
		switch {
		case err == nil:
			parsed := parse(content, r.logger)
			chain = append(chain, configFile{dir: dir, file: parsed})
			r.logger.Debug("discovered config",
				"path", path,
				"sections", len(parsed.Sections),
				"root", parsed.Root)
			if parsed.Root {
				reverse(chain)
				return chain, nil
			}
		case errors.Is(err, fs.ErrNotExist):
			// No configuration at this level.
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	reverse(chain)
	return chain, nil
}

// readConfig reads the file at path, treating directories that happen to
// be named .editorconfig as absent configuration.
func readConfig(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fs.ErrNotExist
	}
	return os.ReadFile(path)
}

func reverse(chain []configFile) {
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
}
