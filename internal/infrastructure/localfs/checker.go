// Package localfs resolves derived artifact names against the local
// archive directory.
package localfs

import (
	"log/slog"
	"os"
	"path/filepath"

	"ArchiveCatalog/internal/ports"
)

// Checker probes for files below a base directory. Probe failures other
// than plain absence are logged and count as absent.
type Checker struct {
	base   string
	logger *slog.Logger
}

var _ ports.FileChecker = (*Checker)(nil)

// New wires a checker over the given base directory.
func New(base string, logger *slog.Logger) *Checker {
	return &Checker{base: base, logger: logger}
}

// Exists reports whether name resolves to a regular file under the base
// directory.
func (c *Checker) Exists(name string) bool {
	if name == "" {
		return false
	}

	info, err := os.Stat(filepath.Join(c.base, name))
	if err != nil {
		if !os.IsNotExist(err) && c.logger != nil {
			c.logger.Warn("file probe failed, treating as absent", "file", name, "error", err)
		}
		return false
	}
	return !info.IsDir()
}
