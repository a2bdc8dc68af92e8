// Package checksum computes the MD5 fingerprints recorded in index files.
// MD5 is fixed by the existing CSV format; it identifies artifacts, it is
// not a security boundary.
package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"ArchiveCatalog/internal/ports"
)

// FileMD5 streams the file through an MD5 hash and returns the hex digest.
func FileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for checksum: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("checksum %s: %w", path, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Summer adapts FileMD5 to the checksummer port.
type Summer struct{}

var _ ports.Checksummer = Summer{}

// Sum implements ports.Checksummer.
func (Summer) Sum(path string) (string, error) {
	return FileMD5(path)
}
