package commands

import (
	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

// SetSourceOptions holds options for the set-source command
type SetSourceOptions struct {
	SpecOptions
	// SourceID names the tag to rewrite; spec.source_id from the
	// configuration when empty.
	SourceID string
	Value    string
}

// SetSource points a Source tag at a new value.
func SetSource(opts SetSourceOptions) (*types.EditResult, error) {
	if opts.Value == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a source value is required")
	}

	return edit("set-source", opts.SpecOptions, func(s *session) error {
		id := opts.SourceID
		if id == "" {
			id = s.cfg.Spec.SourceID
		}
		return s.spec.SetSourceValue(id, opts.Value)
	})
}

// FixPrepOptions holds options for the fix-prep command
type FixPrepOptions struct {
	SpecOptions
	// RootDir is the directory the sources unpack into.
	RootDir string
}

// FixPrep makes the %setup line of %prep unpack into RootDir.
func FixPrep(opts FixPrepOptions) (*types.EditResult, error) {
	if opts.RootDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a root directory is required")
	}

	return edit("fix-prep", opts.SpecOptions, func(s *session) error {
		return s.spec.FixPrepSetup(opts.RootDir)
	})
}
