package commands

import (
	"strconv"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

// SetVersionOptions holds options for the set-version command
type SetVersionOptions struct {
	SpecOptions
	Version   string
	Release   string
	Changelog string
}

// SetVersion updates Version and Release and records a changelog entry.
func SetVersion(opts SetVersionOptions) (*types.EditResult, error) {
	if opts.Version == "" && opts.Release == "" && opts.Changelog == "" {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to set: give a version, a release or a changelog entry")
	}

	return edit("set-version", opts.SpecOptions, func(s *session) error {
		return s.spec.SetSpecVersion(opts.Version, opts.Release, opts.Changelog)
	})
}

// BumpReleaseOptions holds options for the bump-release command
type BumpReleaseOptions struct {
	SpecOptions
	// Commit is the downstream commit hash recorded in Release.
	Commit string
}

// BumpRelease increments the release number for a downstream rebuild.
func BumpRelease(opts BumpReleaseOptions) (*types.EditResult, error) {
	if opts.Commit == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a commit is required")
	}

	return edit("bump-release", opts.SpecOptions, func(s *session) error {
		before := s.spec.ReleaseNumber()
		if err := s.spec.BumpRelease(opts.Commit); err != nil {
			return err
		}
		if _, err := strconv.Atoi(before); err != nil {
			s.logger.Warn().Str("release", before).Msg("Release number is not an integer, kept as is")
		}
		return nil
	})
}

// Release reads Version and Release from the spec.
func Release(opts SpecOptions) (*types.ReleaseResult, error) {
	s, err := openSession("release", opts)
	if err != nil {
		return nil, err
	}
	return &types.ReleaseResult{
		Spec:    opts.SpecPath,
		Version: s.spec.Version(),
		Release: s.spec.Release(),
		Number:  s.spec.ReleaseNumber(),
	}, nil
}

// Changelog returns the %changelog section of the spec.
func Changelog(opts SpecOptions) (*types.ChangelogResult, error) {
	s, err := openSession("changelog", opts)
	if err != nil {
		return nil, err
	}
	lines, ok := s.spec.Changelog()
	if !ok {
		return nil, errors.Newf(errors.ErrSectionNotFound, "%s has no %%changelog section", opts.SpecPath)
	}
	return &types.ChangelogResult{Spec: opts.SpecPath, Lines: lines}, nil
}
