package output

import (
	"fmt"
	"os"
)

// FileSink persists rendered documents. Without Overwrite each destination
// is create-or-fail, so concurrent or repeated runs cannot clobber an
// existing report by accident.
type FileSink struct {
	Overwrite bool
}

// Write stores data at path. With Overwrite set the file is truncated and
// replaced; otherwise an existing file is an error.
func (s FileSink) Write(path string, data []byte) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if s.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create report %q: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write report %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %q: %w", path, err)
	}
	return nil
}
