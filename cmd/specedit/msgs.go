package specedit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Edit RPM spec files from the command line"
	MsgSetVersionShort  = "Set Version and Release and record a changelog entry"
	MsgAddPatchesShort  = "Declare patches in a spec file"
	MsgTagsShort        = "List the tags of a spec file"
	MsgReleaseShort     = "Print the release number of a spec file"
	MsgSetSourceShort   = "Point a Source tag at a new value"
	MsgFixPrepShort     = "Make %setup unpack into a given directory"
	MsgBumpReleaseShort = "Bump the release for a downstream rebuild"
	MsgChangelogShort   = "Show the %changelog of a spec file"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate the man page"
	MsgConfigShort      = "Print the resolved configuration"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Print the diff of the change instead of writing the spec"
	MsgFlagConfig    = "Config file to use instead of .specedit.toml next to the spec"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagDist      = "Expanded %{dist} value, e.g. .fc40 (overrides spec.dist)"
	MsgFlagAuthor    = "Changelog author (overrides changelog.author)"
	MsgFlagEmail     = "Changelog email (overrides changelog.email)"
	MsgFlagSpec      = "Spec file to operate on"
	MsgFlagVersion   = "New Version value"
	MsgFlagRelease   = "New release number, written with a %{?dist} suffix"
	MsgFlagChangelog = "Changelog entry lines, e.g. \"- Update to 1.2\""
	MsgFlagManifest  = "YAML or TOML patch manifest"
	MsgFlagDir       = "Directory holding the patch files"
	MsgFlagPattern   = "Glob selecting patch files in --dir (overrides patches.pattern)"
	MsgFlagName      = "Glob matched against tag names"
	MsgFlagValid     = "Only tags outside (true) or inside (false) %if blocks"
	MsgFlagSourceID  = "Source tag to rewrite (overrides spec.source_id)"
	MsgFlagValue     = "New Source value"
	MsgFlagRootDir   = "Directory the sources unpack into"
	MsgFlagCommit    = "Downstream commit hash"
	MsgFlagDefaults  = "Print the built-in defaults as TOML"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/set-version-long.txt
	msgSetVersionLongRaw string
	MsgSetVersionLong    = strings.TrimSpace(msgSetVersionLongRaw)

	//go:embed msgs/set-version-example.txt
	msgSetVersionExampleRaw string
	MsgSetVersionExample    = strings.TrimRight(msgSetVersionExampleRaw, "\n")

	//go:embed msgs/add-patches-long.txt
	msgAddPatchesLongRaw string
	MsgAddPatchesLong    = strings.TrimSpace(msgAddPatchesLongRaw)

	//go:embed msgs/add-patches-example.txt
	msgAddPatchesExampleRaw string
	MsgAddPatchesExample    = strings.TrimRight(msgAddPatchesExampleRaw, "\n")

	//go:embed msgs/tags-long.txt
	msgTagsLongRaw string
	MsgTagsLong    = strings.TrimSpace(msgTagsLongRaw)

	//go:embed msgs/bump-release-long.txt
	msgBumpReleaseLongRaw string
	MsgBumpReleaseLong    = strings.TrimSpace(msgBumpReleaseLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
