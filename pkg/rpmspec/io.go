package rpmspec

import (
	"os"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/filesystem"
	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/types"
)

// Open reads and parses the spec file at path.
func Open(fsys types.FS, path string) (*Spec, error) {
	s := &Spec{fs: fsys, path: path, logger: logging.GetLogger("rpmspec")}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file, or "" for a parsed-only spec.
func (s *Spec) Path() string {
	return s.path
}

// Reload discards in-memory changes and re-reads the backing file.
func (s *Spec) Reload() error {
	if s.fs == nil || s.path == "" {
		return errors.New(errors.ErrInvalidInput, "spec has no backing file")
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileNotFound, "spec file %s not found", s.path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read spec file %s", s.path)
	}
	s.load(string(data))

	s.logger.Debug().
		Str("path", s.path).
		Int("sections", len(s.sections)).
		Int("tags", len(s.tags)).
		Msg("Spec loaded")
	return nil
}

// Save writes the document back to its file.
func (s *Spec) Save() error {
	if s.fs == nil || s.path == "" {
		return errors.New(errors.ErrInvalidInput, "spec has no backing file")
	}
	if err := filesystem.WriteFileAtomic(s.fs, s.path, []byte(s.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write spec file %s", s.path)
	}
	s.logger.Debug().Str("path", s.path).Msg("Spec saved")
	return nil
}
