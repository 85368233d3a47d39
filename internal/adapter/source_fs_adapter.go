// Package adapter contains the filesystem and persistence adapters for the annogen CLI.
package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/annogen/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get resolves roots (files, directories, `dir/...`) to the C/C++ sources
	// whose extension is in extensions, in discovery order and without duplicates.
	Get(roots []m.Path, extensions []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadLines loads a file and splits it into lines without terminators.
	ReadLines(path m.Path) ([]string, error)

	// WriteLines replaces path atomically with lines joined by "\n".
	WriteLines(path m.Path, lines []string) error

	// ReadFileList reads one path per line, skipping blanks and `#` comments.
	ReadFileList(path m.Path) ([]m.Path, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// DefaultSourceExtensions lists the C/C++ extensions scanned when none are configured.
func DefaultSourceExtensions() []string {
	return []string{".h", ".hh", ".hpp", ".hxx", ".c", ".cc", ".cpp", ".cxx"}
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects C/C++ source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, extensions []string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	if len(extensions) == 0 {
		extensions = DefaultSourceExtensions()
	}

	seen := make(map[string]struct{})

	var sources []m.Path

	add := func(path string) error {
		if !hasExtension(path, extensions) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[abs]; exists {
			return nil
		}

		seen[abs] = struct{}{}
		sources = append(sources, m.Path(abs))

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skippedDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadLines loads path and splits it on "\n". A trailing newline does not
// produce an extra empty line and "\r" line endings are dropped.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	// #nosec G304 - path comes from the scanned source set
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	return SplitLines(content), nil
}

// WriteLines writes lines through a temporary file in the target directory and
// renames it over path, keeping the permissions of an existing file.
func (a *LocalSourceFSAdapter) WriteLines(path m.Path, lines []string) error {
	return atomicWrite(string(path), JoinLines(lines))
}

// ReadFileList reads a list of source paths. Relative entries are resolved
// against the directory of the list file.
func (a *LocalSourceFSAdapter) ReadFileList(path m.Path) ([]m.Path, error) {
	// #nosec G304 - the list file is given explicitly by the user
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	base := filepath.Dir(string(path))

	var paths []m.Path

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		if !filepath.IsAbs(entry) && !strings.HasPrefix(entry, "~") {
			entry = filepath.Join(base, entry)
		}

		paths = append(paths, m.Path(entry))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file list %s: %w", path, err)
	}

	return paths, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// SplitLines splits file content into lines without terminators.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// JoinLines renders lines as file content terminated by a newline.
func JoinLines(lines []string) []byte {
	var buf bytes.Buffer

	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func atomicWrite(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".annogen-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func hasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

func skippedDir(name string) bool {
	return name == ".git" || name == "build" || name == "node_modules"
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
