package specfile

import (
	"fmt"
	"path"
	"strings"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

// AppliedPatches returns the Patch tags of the main preamble.
func (s *Specfile) AppliedPatches() []types.Tag {
	var patches []types.Tag
	for tag := range s.doc.Tags(types.TagFilter{Name: patchTagPattern}) {
		if tag.Section == 0 {
			patches = append(patches, tag)
		}
	}
	return patches
}

func appliedName(tag types.Tag) string {
	return path.Base(tag.Value)
}

// SetPatches declares every patch of list that the spec does not know yet,
// in order. The document is reloaded first so patches generated on disk
// since it was opened are taken into account.
func (s *Specfile) SetPatches(list []types.PatchMetadata) error {
	if len(list) == 0 {
		return nil
	}

	allPresent := true
	for _, p := range list {
		if !p.PresentInSpecfile {
			allPresent = false
			break
		}
	}
	if allPresent {
		s.logger.Debug().Msg("All patches are present in the spec file, nothing to do here")
		return nil
	}

	if err := s.doc.Reload(); err != nil {
		return err
	}

	applied := make(map[string]struct{})
	for _, tag := range s.AppliedPatches() {
		applied[appliedName(tag)] = struct{}{}
	}

	for _, p := range list {
		if p.PresentInSpecfile {
			s.logger.Debug().Str("patch", p.Name).Msg("Patch is already present in the spec file")
			continue
		}
		if _, ok := applied[p.Name]; ok {
			s.logger.Debug().Str("patch", p.Name).Msg("Patch is already defined in the spec file")
			continue
		}
		if err := s.AddPatch(p); err != nil {
			return err
		}
	}
	return nil
}

// AddPatch declares one patch with index max(existing)+1 and saves the spec.
// Patches that are already present or declared are left alone.
func (s *Specfile) AddPatch(patch types.PatchMetadata) error {
	if patch.PresentInSpecfile {
		s.logger.Debug().Str("patch", patch.Name).Msg("Patch is already present in the spec file")
		return nil
	}

	applied := s.AppliedPatches()
	offset := 0
	for _, tag := range applied {
		if appliedName(tag) == patch.Name {
			s.logger.Debug().Str("patch", patch.Name).Msg("Patch is already defined in the spec file")
			return nil
		}
		offset = max(offset, tag.Index)
	}
	if len(applied) == 0 {
		s.logger.Debug().Msg("There are no patches in the spec")
	}

	anchor, pattern := "Source", sourceTagPattern
	if len(applied) > 0 {
		anchor, pattern = "Patch", patchTagPattern
	}
	last, ok := s.lastPreambleTag(pattern)
	if !ok {
		return errors.Newf(errors.ErrTagNotFound, "no %s tag to place patch %s after", anchor, patch.Name).
			WithDetail("patch", patch.Name)
	}

	lines, _ := s.doc.Section(preamble)
	where := len(lines)
	for i := last.Line; i < len(lines); i++ {
		if lines[i] == "" {
			where = i
			break
		}
	}

	s.logger.Debug().
		Str("patch", patch.Name).
		Int("index", offset+1).
		Int("line", where).
		Msg("Adding patch to the spec file")

	if err := s.doc.InsertLines(preamble, where, patchBlock(patch, offset+1)); err != nil {
		return err
	}
	return s.doc.Save()
}

func (s *Specfile) lastPreambleTag(pattern string) (types.Tag, bool) {
	var last types.Tag
	found := false
	for tag := range s.doc.Tags(types.TagFilter{Name: pattern}) {
		if tag.Section == 0 {
			last, found = tag, true
		}
	}
	return last, found
}

// patchBlock renders the lines inserted for one patch: a separating blank
// line, the comment, then the Patch tag.
func patchBlock(patch types.PatchMetadata, index int) []string {
	block := []string{""}
	for _, line := range strings.Split(patch.SpecfileComment, "\n") {
		block = append(block, "# "+line)
	}
	return append(block, fmt.Sprintf("Patch%04d: %s", index, patch.Name))
}
