package filesystem

import (
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/arthur-debert/specedit/pkg/types"
)

// WriteFileAtomic writes data to a sibling temp file and renames it over
// name, so readers never observe a half-written spec. The existing file
// mode is kept when name already exists.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	if info, err := fsys.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}

	tempPath := name + ".tmp." + strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := fsys.WriteFile(tempPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := fsys.Rename(tempPath, name); err != nil {
		_ = fsys.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
