package types

// PatchMetadata describes a patch that should be declared in a spec file.
type PatchMetadata struct {
	// Name is the patch file name, used verbatim as the Patch tag value.
	Name string `json:"name" yaml:"name" toml:"name"`
	// PresentInSpecfile is set when the patch is already declared.
	PresentInSpecfile bool `json:"presentInSpecfile" yaml:"present_in_specfile" toml:"present_in_specfile"`
	// SpecfileComment is written above the Patch tag, one "# " line per line.
	SpecfileComment string `json:"comment,omitempty" yaml:"comment" toml:"comment"`
}
