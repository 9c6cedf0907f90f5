package ingest

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/extract"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Loaded  uint32
	Failed  uint32
}

// FileError is a file that could not be read during the walk.
type FileError struct {
	Path string
	Err  string
}

// ListFiles walks root and returns the paths of every request document,
// applying the same hidden-file and extension filters as CollectDirectory
// but without reading file contents. Used by the filename audit, which only
// needs the listing.
func ListFiles(root string, skipHidden bool) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("root path is required")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		base := filepath.Base(path)
		if skipHidden && strings.HasPrefix(base, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || strings.HasPrefix(base, "~$") {
			return nil
		}
		if constants.MapExtToFormat(filepath.Ext(path)) == "" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

// CollectDirectory walks root and loads every request document into memory
// as a RawDocument for batch processing. Hidden files, editor lock files
// ("~$...") and unsupported extensions are skipped. Read failures are
// reported per file and never stop the walk.
func CollectDirectory(root string, skipHidden bool, logger *slog.Logger) ([]extract.RawDocument, []FileError, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, DirStats{}, errors.New("root path is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var docs []extract.RawDocument
	var fileErrs []FileError
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			fileErrs = append(fileErrs, FileError{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		base := filepath.Base(path)
		if skipHidden && strings.HasPrefix(base, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(base, "~$") {
			return nil
		}
		format := constants.MapExtToFormat(filepath.Ext(path))
		if format == "" {
			return nil
		}
		stats.Matched++

		content, err := os.ReadFile(path)
		if err != nil {
			fileErrs = append(fileErrs, FileError{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		docs = append(docs, extract.RawDocument{
			Filename: base,
			Format:   format,
			Content:  content,
			Path:     path,
		})
		stats.Loaded++
		return nil
	})
	if err != nil {
		return docs, fileErrs, stats, err
	}

	logger.Info("ingest.directory.scanned",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"loaded", stats.Loaded,
		"failed", stats.Failed,
	)
	return docs, fileErrs, stats, nil
}
