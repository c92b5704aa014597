package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path      string
	Name      string
	ParentDir string // name of the immediate parent directory
	Size      int64
	ModTime   time.Time
}

// Discovery provides file discovery operations rooted at a base path.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// tabularExtensions lists the file extensions treated as message exports.
var tabularExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
}

// IsTabular reports whether the file name has a recognized tabular extension.
// Excel lock files ("~$...") are never tabular.
func IsTabular(name string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	return tabularExtensions[strings.ToLower(filepath.Ext(name))]
}

// FindMessageExports recursively finds all tabular files under dir. Paths in
// exclude are skipped, which keeps a previously written combined artifact out
// of its own input set. Traversal order follows filepath.WalkDir (lexical
// within each directory).
func (d *Discovery) FindMessageExports(dir string, exclude ...string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		abs, err := filepath.Abs(e)
		if err != nil {
			continue
		}
		excluded[abs] = true
	}

	var files []FileInfo
	err := filepath.WalkDir(fullPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !IsTabular(entry.Name()) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err == nil && excluded[abs] {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path:      path,
			Name:      entry.Name(),
			ParentDir: filepath.Base(filepath.Dir(path)),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", fullPath, err)
	}

	return files, nil
}
