package commands

import (
	"slices"

	"github.com/arthur-debert/specedit/pkg/rpmspec"
	"github.com/arthur-debert/specedit/pkg/types"
)

// TagsOptions holds options for the tags command
type TagsOptions struct {
	SpecOptions
	Filter types.TagFilter
}

// ListTags returns the tags of the spec matching the filter.
func ListTags(opts TagsOptions) (*types.TagsResult, error) {
	if err := rpmspec.ValidateFilter(opts.Filter); err != nil {
		return nil, err
	}

	s, err := openSession("tags", opts.SpecOptions)
	if err != nil {
		return nil, err
	}

	tags := slices.Collect(s.spec.Tags(opts.Filter))
	s.logger.Debug().Int("count", len(tags)).Str("filter", opts.Filter.Name).Msg("Tags listed")

	return &types.TagsResult{Spec: opts.SpecPath, Tags: tags}, nil
}
