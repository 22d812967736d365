package export

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/socialnet/core"
)

// WriteFile writes edges to path as TSV.
//
// Parent directories are created as needed. Data goes to a temporary file in
// the destination directory which is renamed over path only after a
// successful flush and close, so readers never observe a partial file.
// ctx is checked before the rename. Filesystem errors are returned unwrapped
// (*fs.PathError, *os.LinkError).
func WriteFile(ctx context.Context, path string, edges []core.Edge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = WriteTSV(bw, edges); err != nil {
		return fmt.Errorf("%s: %w", MethodWrite, err)
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		_ = os.Remove(tmpName)
		committed = true

		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	return nil
}

// ReadFile is the file counterpart of ReadTSV.
func ReadFile(path string) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTSV(bufio.NewReader(f))
}
