package types

// EditResult is returned by every command that may rewrite a spec file.
type EditResult struct {
	Command string `json:"command"`
	Spec    string `json:"spec"`
	// Changed is true when the spec text differs after the command ran.
	Changed bool `json:"changed"`
	// DryRun is true when the new text was never written to disk.
	DryRun bool `json:"dryRun"`
	// Diff is the unified diff of the edit; empty when nothing changed.
	Diff    string         `json:"diff,omitempty"`
	Message string         `json:"message,omitempty"`
	Patches []PatchOutcome `json:"patches,omitempty"`
}

// PatchOutcome records what add-patches did with one patch.
type PatchOutcome struct {
	Name string `json:"name"`
	// Status is one of the PatchStatus* values.
	Status string `json:"status"`
}

// Patch outcome states.
const (
	PatchStatusAdded   = "added"
	PatchStatusPresent = "present"
)

// TagsResult holds the result of the 'tags' command.
type TagsResult struct {
	Spec string `json:"spec"`
	Tags []Tag  `json:"tags"`
}

// ReleaseResult holds the result of the 'release' command.
type ReleaseResult struct {
	Spec    string `json:"spec"`
	Version string `json:"version"`
	Release string `json:"release"`
	// Number is Release with the dist suffix and trailing text removed.
	Number string `json:"number"`
}

// ChangelogResult holds the %changelog section of a spec.
type ChangelogResult struct {
	Spec  string   `json:"spec"`
	Lines []string `json:"lines"`
}
