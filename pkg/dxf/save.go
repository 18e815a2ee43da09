package dxf

import (
	"fmt"
	"os"
)

// Save writes the rendered drawing to path as ASCII text.
// An existing file is truncated and rewritten in place: symlinks are followed
// and the file keeps its permissions. A file that is not writable fails.
func (d *Document) Save(path string) (err error) {
	out := d.DXF()
	if !isASCII(out) {
		return fmt.Errorf("save %s: %w", path, ErrNonASCII)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()

	if _, err := f.WriteString(out); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
