package filesystem

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/specedit/pkg/types"
)

// NewDryRun layers an in-memory scratch filesystem over a read-only view
// of base. Writes land in memory; base is never touched.
func NewDryRun(base afero.Fs) types.FS {
	return NewAferoFS(afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base), afero.NewMemMapFs()))
}
