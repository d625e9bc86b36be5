package patches

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

// Manifest is the on-disk list of patches.
//
//	patches:
//	  - name: 0001-fix-build.patch
//	    comment: Fix the build with gcc 14
type Manifest struct {
	Patches []types.PatchMetadata `yaml:"patches" toml:"patches"`
}

// LoadManifest reads a manifest; the format follows the file extension
// (.yaml, .yml or .toml).
func LoadManifest(fsys types.FS, path string) ([]types.PatchMetadata, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "manifest %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read manifest %s", path)
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".toml":
		err = toml.Unmarshal(data, &m)
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", ext).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "cannot parse manifest %s", path)
	}

	for i, p := range m.Patches {
		if strings.TrimSpace(p.Name) == "" {
			return nil, errors.Newf(errors.ErrPatchInvalid, "patch #%d in %s has no name", i+1, path)
		}
	}
	return m.Patches, nil
}
