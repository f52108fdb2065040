// Package sink writes export payloads to writers and files, optionally as
// LZ4 frames.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

// CompressedExt is appended to the names of LZ4-compressed files.
const CompressedExt = ".lz4"

const filePerm = 0o644

// ErrEmptyBaseName is returned by FileName for an empty base name.
var ErrEmptyBaseName = errors.New("empty output base name")

// Options controls how a payload is written.
type Options struct {
	// Compress wraps the output in an LZ4 frame.
	Compress bool
}

// Bytes returns the bytes a payload is written as. Serialized formats are
// returned as is; the array format is rendered with %+v.
func Bytes(payload tally.Payload) []byte {
	if payload.Data != nil {
		return payload.Data
	}

	return fmt.Appendf(nil, "%+v\n", payload.Document)
}

// Write writes payload to w.
func Write(w io.Writer, payload tally.Payload, opts Options) error {
	if !opts.Compress {
		_, err := w.Write(Bytes(payload))
		if err != nil {
			return fmt.Errorf("write payload: %w", err)
		}

		return nil
	}

	zw := lz4.NewWriter(w)

	_, err := zw.Write(Bytes(payload))
	if err != nil {
		return errors.Join(fmt.Errorf("compress payload: %w", err), zw.Close())
	}

	closeErr := zw.Close()
	if closeErr != nil {
		return fmt.Errorf("flush lz4 frame: %w", closeErr)
	}

	return nil
}

// FileName returns dir/base.<format>, with CompressedExt appended when compress is set.
func FileName(dir, base string, format tally.Format, compress bool) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", ErrEmptyBaseName
	}

	name := base + "." + format.String()
	if compress {
		name += CompressedExt
	}

	return filepath.Join(dir, name), nil
}

// WriteFile writes payload to path through a temporary file in the same
// directory, so readers never observe a partial export.
func WriteFile(path string, payload tally.Payload, opts Options) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	writeErr := Write(tmp, payload, opts)
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		return errors.Join(writeErr, closeErr, os.Remove(tmpName))
	}

	chmodErr := os.Chmod(tmpName, filePerm)
	if chmodErr != nil {
		return errors.Join(fmt.Errorf("chmod %s: %w", tmpName, chmodErr), os.Remove(tmpName))
	}

	renameErr := os.Rename(tmpName, path)
	if renameErr != nil {
		return errors.Join(fmt.Errorf("rename to %s: %w", path, renameErr), os.Remove(tmpName))
	}

	return nil
}

// Open opens a file, transparently decompressing LZ4 files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if !strings.HasSuffix(path, CompressedExt) {
		return f, nil
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: lz4.NewReader(f), Closer: f}, nil
}
