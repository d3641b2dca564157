package snapshot

import (
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/zerr"
)

// Open opens the dump at path for reading, decompressing it when the name
// ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotOpenFailed.Error()), "file", path)
	}
	if !domain.IsCompressed(path) {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotOpenFailed.Error()), "file", path)
	}
	return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// Create creates or truncates the dump at path, compressing it when the name
// ends in .gz.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "file", path)
	}
	if !domain.IsCompressed(path) {
		return f, nil
	}

	zw := gzip.NewWriter(f)
	return &stackedCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
}

// ReadFile reads the snapshot stored at path.
func ReadFile(path string) (domain.Snapshot, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	snap, err := Read(rc)
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	return snap, nil
}

// stackedCloser closes a compression stream before the file beneath it.
type stackedCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
