package commands

import (
	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/patches"
	"github.com/arthur-debert/specedit/pkg/types"
)

// AddPatchesOptions holds options for the add-patches command.
// Exactly one of Manifest and Dir must be set.
type AddPatchesOptions struct {
	SpecOptions
	// Manifest is a YAML or TOML file listing the patches.
	Manifest string
	// Dir is scanned for patch files matching Pattern.
	Dir string
	// Pattern defaults to patches.pattern from the configuration.
	Pattern string
}

// AddPatches declares the patches the spec does not know about yet.
func AddPatches(opts AddPatchesOptions) (*types.EditResult, error) {
	if (opts.Manifest == "") == (opts.Dir == "") {
		return nil, errors.New(errors.ErrInvalidInput, "give either a patch manifest or a patch directory")
	}

	var outcomes []types.PatchOutcome
	result, err := edit("add-patches", opts.SpecOptions, func(s *session) error {
		list, err := loadPatches(s, opts)
		if err != nil {
			return err
		}

		list = patches.MarkPresent(list, s.spec)
		seen := make(map[string]struct{})
		for _, p := range list {
			status := types.PatchStatusAdded
			if _, dup := seen[p.Name]; dup || p.PresentInSpecfile {
				status = types.PatchStatusPresent
			}
			seen[p.Name] = struct{}{}
			outcomes = append(outcomes, types.PatchOutcome{Name: p.Name, Status: status})
		}

		s.logger.Info().Int("patches", len(list)).Msg("Declaring patches")
		return s.spec.SetPatches(list)
	})
	if err != nil {
		return nil, err
	}

	result.Patches = outcomes
	return result, nil
}

func loadPatches(s *session, opts AddPatchesOptions) ([]types.PatchMetadata, error) {
	if opts.Manifest != "" {
		return patches.LoadManifest(s.fs, opts.Manifest)
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = s.cfg.Patches.Pattern
	}
	return patches.Discover(s.fs, opts.Dir, pattern)
}
