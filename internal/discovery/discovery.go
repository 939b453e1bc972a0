// Package discovery resolves evaluate arguments into input payloads:
// glob expansion, file checks and format detection.
package discovery

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dotcommander/vendorsel/internal/types"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// FormatPattern maps a glob pattern to an input format for detection.
// Patterns are matched in order against the lower-cased base name; first match wins.
type FormatPattern struct {
	Pattern string
	Format  string
}

var formatPatterns = []FormatPattern{
	{"*.csv", types.FormatCSV},
	{"*.json", types.FormatJSON},
}

// File is one input payload ready for evaluation.
type File struct {
	Path     string // file path, or "-" for stdin
	Format   string
	Contents string
}

// DetectFormat determines the input format from a file name.
func DetectFormat(path string) (string, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, fp := range formatPatterns {
		if ok, _ := doublestar.Match(fp.Pattern, base); ok {
			return fp.Format, nil
		}
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return "", fmt.Errorf("cannot detect format of %s, use --input-format: %w", path, &types.FormatError{Format: ext})
}

// Sniff guesses the format of unnamed content: a leading '{' means JSON,
// anything else is read as CSV.
func Sniff(contents string) string {
	if strings.HasPrefix(strings.TrimSpace(contents), "{") {
		return types.FormatJSON
	}
	return types.FormatCSV
}

// Expand resolves arguments into paths. Arguments containing glob
// metacharacters are expanded with doublestar (files only, sorted); other
// arguments pass through unchanged. No arguments means stdin.
func Expand(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{Stdin}, nil
	}

	var paths []string
	for _, arg := range args {
		if arg == Stdin || !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		if !doublestar.ValidatePathPattern(arg) {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern %s", arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Load reads one input. format overrides detection when non-empty.
func Load(path, format string, stdin io.Reader) (File, error) {
	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return File{}, fmt.Errorf("error reading stdin: %w", err)
		}
		contents := string(data)
		if format == "" {
			format = Sniff(contents)
		}
		return File{Path: Stdin, Format: format, Contents: contents}, nil
	}

	absPath, err := ValidateFilePath(path)
	if err != nil {
		return File{}, err
	}
	if format == "" {
		if format, err = DetectFormat(path); err != nil {
			return File{}, err
		}
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return File{}, fmt.Errorf("cannot read file: %s: %w", path, err)
	}
	return File{Path: path, Format: format, Contents: string(data)}, nil
}

// ValidateFilePath checks that path names a readable, non-binary regular file
// and returns its absolute, symlink-resolved form.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", path)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		realPath, evalErr := filepath.EvalSymlinks(absPath)
		if evalErr != nil {
			return "", fmt.Errorf("cannot resolve symlink %s: %w", path, evalErr)
		}
		absPath = realPath
		if info, err = os.Stat(absPath); err != nil {
			return "", fmt.Errorf("symlink target inaccessible: %s: %w", path, err)
		}
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if info.Size() == 0 {
		return absPath, nil
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("cannot read file: %s: %w", path, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", path)
	}

	return absPath, nil
}
