package specfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/specedit/pkg/errors"
)

const changelogDateLayout = "Mon Jan 02 2006"

// SetSpecVersion sets Version, Release (suffixed with %{?dist}) and
// prepends a changelog entry. Empty arguments are skipped; the entry is
// also skipped when the spec has no %changelog section.
//
// Failures of the document layer are logged and reported as ErrSpecEdit;
// the document is reloaded so no partial edit survives.
func (s *Specfile) SetSpecVersion(version, release, changelogEntry string) error {
	if err := s.setSpecVersion(version, release, changelogEntry); err != nil {
		s.logger.Error().Err(err).Msg("Failed to change the spec file")
		if rerr := s.doc.Reload(); rerr != nil {
			s.logger.Warn().Err(rerr).Msg("Failed to discard unsaved spec changes")
		}
		return errors.New(errors.ErrSpecEdit, "underlying spec edit failed")
	}
	return nil
}

func (s *Specfile) setSpecVersion(version, release, changelogEntry string) error {
	changed := false
	if version != "" {
		if err := s.doc.SetTag("Version", version); err != nil {
			return err
		}
		changed = true
	}
	if release != "" {
		if err := s.doc.SetTag("Release", release+distMacro); err != nil {
			return err
		}
		changed = true
	}

	if changelogEntry != "" {
		if _, ok := s.doc.Section(changelogName); ok {
			if err := s.prependChangelog(changelogEntry); err != nil {
				return err
			}
			changed = true
		} else {
			s.logger.Debug().Msg("The spec file doesn't have any %changelog, will not set it")
		}
	}

	if !changed {
		return nil
	}
	return s.doc.Save()
}

// UpdateChangelog prepends an entry to %changelog and saves the spec.
func (s *Specfile) UpdateChangelog(entry string) error {
	if err := s.prependChangelog(entry); err != nil {
		return err
	}
	return s.doc.Save()
}

func (s *Specfile) prependChangelog(entry string) error {
	current, ok := s.doc.Section(changelogName)
	if !ok {
		return errors.New(errors.ErrSectionNotFound, "the spec file has no %changelog section")
	}

	lines := []string{s.changelogHeader()}
	lines = append(lines, strings.Split(entry, "\n")...)
	lines = append(lines, "")
	lines = append(lines, current...)
	return s.doc.ReplaceSection(changelogName, lines)
}

func (s *Specfile) changelogHeader() string {
	header := fmt.Sprintf("* %s %s", s.opts.Now().Format(changelogDateLayout), s.opts.ChangelogAuthor)
	if s.opts.ChangelogEmail != "" {
		header += fmt.Sprintf(" <%s>", s.opts.ChangelogEmail)
	}
	return fmt.Sprintf("%s - %s-%s", header, s.Version(), s.releaseWithoutDist())
}

// BumpRelease marks a downstream rebuild of commit: an integer release
// number N becomes N+1, and Release is set to "<N>.g<commit>".
func (s *Specfile) BumpRelease(commit string) error {
	release := s.ReleaseNumber()
	if n, err := strconv.Atoi(release); err == nil {
		release = strconv.Itoa(n + 1)
	}
	return s.SetSpecVersion("",
		fmt.Sprintf("%s.g%s", release, commit),
		fmt.Sprintf("- Downstream changes (%s)", commit))
}
