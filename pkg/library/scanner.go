// pkg/library/scanner.go
package library

import (
	"path/filepath"
	"strings"

	"github.com/arc-language/libresolve/pkg/logging"
	"github.com/spf13/afero"
)

// Separator delimits entries in a library search path
const Separator = ":"

// SplitPath splits a search path into its entries, keeping their order.
func SplitPath(searchPath string) []string {
	if searchPath == "" {
		return nil
	}
	return strings.Split(searchPath, Separator)
}

// Scanner looks for library files in search path directories
type Scanner struct {
	Fs     afero.Fs
	Logger logging.Logger
}

// NewScanner creates a scanner over fs
func NewScanner(fs afero.Fs, logger logging.Logger) *Scanner {
	return &Scanner{Fs: fs, Logger: logging.OrNop(logger)}
}

// Find returns the first entry of searchPath that directly contains the file
// named by q. Entries are tried in order, like the dynamic linker does.
func (s *Scanner) Find(searchPath string, q Query) Result {
	logger := logging.OrNop(s.Logger)
	fileName := q.FileName()

	logger.Debugf("Scanning path for [%s]", fileName)

	for _, dir := range SplitPath(searchPath) {
		if dir == "" {
			continue
		}
		logger.Debugf("Scanning [%s]", dir)

		candidate := filepath.Join(dir, fileName)
		if !s.isRegular(candidate) {
			continue
		}

		res := Result{
			Found:    true,
			Path:     absPath(candidate),
			Dir:      dir,
			Provider: nixProvider(dir),
		}
		if res.Provider != "" {
			logger.Debugf("[%s] found in [%s] (nix package %s)", fileName, dir, res.Provider)
		} else {
			logger.Debugf("[%s] found in [%s]", fileName, dir)
		}
		return res
	}

	logger.Debugf("[%s] not found.", fileName)
	return NotFound
}

// Candidates reports every entry of searchPath and whether it holds the file named by q.
func (s *Scanner) Candidates(searchPath string, q Query) []Candidate {
	fileName := q.FileName()

	var candidates []Candidate
	for _, dir := range SplitPath(searchPath) {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, fileName)
		candidates = append(candidates, Candidate{
			Dir:      dir,
			Path:     path,
			Exists:   s.isRegular(path),
			Provider: nixProvider(dir),
		})
	}
	return candidates
}

// isRegular returns true if the given path exists and is a regular file.
func (s *Scanner) isRegular(path string) bool {
	info, err := s.Fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func absPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
