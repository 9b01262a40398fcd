// Package archive handles the comic bundle format: a zip file of page
// images, conventionally named .cbz.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractionError wraps a failure while unpacking a bundle.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// CreationError wraps a failure while writing a bundle.
type CreationError struct {
	Path string
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("creating %s: %v", e.Path, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// Extensions recognized as comic bundles.
func IsBundle(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbz", ".zip":
		return true
	}
	return false
}

// Extract unpacks the bundle into destDir, preserving member paths.
// Members that would escape destDir are rejected rather than skipped:
// a crafted bundle is an error, not a partial success.
func Extract(path, destDir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return &ExtractionError{Path: path, Err: err}
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return &ExtractionError{Path: path, Err: err}
	}

	for _, f := range r.File {
		if err := extractMember(f, destDir); err != nil {
			return &ExtractionError{Path: path, Err: err}
		}
	}
	return nil
}

func extractMember(f *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("member %q escapes destination", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Create bundles every regular file under srcDir into a zip at path,
// storing paths relative to srcDir with forward slashes. onMember, when
// non-nil, is called once per file added.
func Create(path, srcDir string, onMember func(name string)) error {
	out, err := os.Create(path)
	if err != nil {
		return &CreationError{Path: path, Err: err}
	}

	zw := zip.NewWriter(out)
	err = filepath.WalkDir(srcDir, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		src, err := os.Open(p)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return err
		}
		if err := src.Close(); err != nil {
			return err
		}

		if onMember != nil {
			onMember(name)
		}
		return nil
	})
	if err != nil {
		zw.Close()
		out.Close()
		os.Remove(path)
		return &CreationError{Path: path, Err: err}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return &CreationError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		return &CreationError{Path: path, Err: err}
	}
	return nil
}

// Members returns the file names stored in a bundle.
func Members(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			names = append(names, f.Name)
		}
	}
	return names, nil
}
