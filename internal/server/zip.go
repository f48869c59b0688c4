// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// zipDir packages every regular file in dir into a flat in-memory zip
// archive. Subdirectories are ignored.
func zipDir(dir string) (*bytes.Buffer, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := addZipFile(zw, filepath.Join(dir, entry.Name()), entry.Name()); err != nil {
			zw.Close()
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func addZipFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
