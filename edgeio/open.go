// SPDX-License-Identifier: MIT

package edgeio

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/edgeprep/core"
)

// ReadFile reads an edge list from a plain, compressed or archived file.
//
// Errors: *IOError when the source cannot be opened or decoded; see Read.
func ReadFile(name string, opts ...ReadOption) (*core.EdgeSet, error) {
	c := newReadConfig(opts)
	rc, err := openSource(name, c.entry)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc, opts...)
}

// readCloser closes every layer of a decoded source, innermost first.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func openSource(name, entry string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip":
		return openZipEntry(name, entry)
	case ".gz":
		f, err := os.Open(name)
		if err != nil {
			return nil, &IOError{Op: "open", Path: name, Err: err}
		}
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Op: "gzip", Path: name, Err: err}
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		f, err := os.Open(name)
		if err != nil {
			return nil, &IOError{Op: "open", Path: name, Err: err}
		}
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Op: "zstd", Path: name, Err: err}
		}
		zr := dec.IOReadCloser()
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	default:
		f, err := os.Open(name)
		if err != nil {
			return nil, &IOError{Op: "open", Path: name, Err: err}
		}
		return f, nil
	}
}

// openZipEntry opens entry inside the archive. An exact name match wins;
// otherwise the first entry whose base name equals entry is used.
func openZipEntry(name, entry string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(name)
	if err != nil {
		return nil, &IOError{Op: "open", Path: name, Err: err}
	}

	var found *zip.File
	for _, f := range zr.File {
		if f.Name == entry {
			found = f
			break
		}
		if found == nil && path.Base(f.Name) == entry {
			found = f
		}
	}
	if found == nil {
		zr.Close()
		return nil, &IOError{Op: "open entry " + entry, Path: name, Err: ErrEntryNotFound}
	}

	er, err := found.Open()
	if err != nil {
		zr.Close()
		return nil, &IOError{Op: "open entry " + entry, Path: name, Err: err}
	}

	return &readCloser{Reader: er, closers: []io.Closer{er, zr}}, nil
}
