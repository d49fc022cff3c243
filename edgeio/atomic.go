// SPDX-License-Identifier: MIT

package edgeio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// writeAtomic runs fill against a temporary file in the directory of name and
// renames it to name once everything has been flushed and synced. The
// temporary file is removed on any failure.
func writeAtomic(name string, fill func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: name, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = compressTo(tmp, name, fill); err != nil {
		return &IOError{Op: "write", Path: name, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: name, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: name, Err: err}
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return &IOError{Op: "rename", Path: name, Err: err}
	}

	return nil
}

// compressTo wraps w in the compressor selected by the extension of name.
func compressTo(w io.Writer, name string, fill func(w io.Writer) error) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zw := gzip.NewWriter(w)
		if err := fill(zw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case ".zst":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err = fill(zw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		return fill(w)
	}
}
