package specedit

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/specedit/internal/version"
	"github.com/arthur-debert/specedit/pkg/commands"
	"github.com/arthur-debert/specedit/pkg/config"
	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/types"
	"github.com/arthur-debert/specedit/pkg/ui"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string
	dist       string
	author     string
	email      string
}

func (g *globalOptions) overrides() map[string]interface{} {
	return map[string]interface{}{
		"spec.dist":        g.dist,
		"changelog.author": g.author,
		"changelog.email":  g.email,
	}
}

func (g *globalOptions) specOptions(specPath string) commands.SpecOptions {
	return commands.SpecOptions{
		SpecPath:   specPath,
		ConfigFile: g.configFile,
		Overrides:  g.overrides(),
		DryRun:     g.dryRun,
	}
}

func (g *globalOptions) render(cmd *cobra.Command, result interface{}) error {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "specedit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logFile := ""
			if cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile}); err == nil {
				logFile = cfg.Logging.File
			}
			logging.SetupLoggerWithFile(opts.verbosity, logFile)
			logger := logging.WithFields(map[string]interface{}{
				"command": cmd.Name(),
				"dry_run": opts.dryRun,
			})
			logger.Debug().Msg("Command started")

			if _, err := ui.ParseFormat(opts.format); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.StringVar(&opts.dist, "dist", "", MsgFlagDist)
	flags.StringVar(&opts.author, "author", "", MsgFlagAuthor)
	flags.StringVar(&opts.email, "email", "", MsgFlagEmail)

	rootCmd.AddGroup(&cobra.Group{ID: "edit", Title: "EDIT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "QUERY:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSetVersionCmd(opts))
	rootCmd.AddCommand(newBumpReleaseCmd(opts))
	rootCmd.AddCommand(newAddPatchesCmd(opts))
	rootCmd.AddCommand(newSetSourceCmd(opts))
	rootCmd.AddCommand(newFixPrepCmd(opts))
	rootCmd.AddCommand(newTagsCmd(opts))
	rootCmd.AddCommand(newReleaseCmd(opts))
	rootCmd.AddCommand(newChangelogCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// RenderError prints err on the command's error stream in the --format
// selected for the run.
func RenderError(cmd *cobra.Command, err error) {
	formatName, _ := cmd.PersistentFlags().GetString("format")
	format, parseErr := ui.ParseFormat(formatName)
	if parseErr != nil {
		format = ui.FormatText
	}
	renderer, rErr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}

func addSpecFlag(cmd *cobra.Command, specPath *string) {
	cmd.Flags().StringVarP(specPath, "spec", "s", "", MsgFlagSpec)
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagFilename("spec", "spec")
}

func newSetVersionCmd(g *globalOptions) *cobra.Command {
	var specPath, newVersion, release, changelog string

	cmd := &cobra.Command{
		Use:     "set-version",
		Short:   MsgSetVersionShort,
		Long:    MsgSetVersionLong,
		Example: MsgSetVersionExample,
		GroupID: "edit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.SetVersion(commands.SetVersionOptions{
				SpecOptions: g.specOptions(specPath),
				Version:     newVersion,
				Release:     release,
				Changelog:   changelog,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVar(&newVersion, "version", "", MsgFlagVersion)
	cmd.Flags().StringVar(&release, "release", "", MsgFlagRelease)
	cmd.Flags().StringVar(&changelog, "changelog", "", MsgFlagChangelog)
	return cmd
}

func newBumpReleaseCmd(g *globalOptions) *cobra.Command {
	var specPath, commit string

	cmd := &cobra.Command{
		Use:     "bump-release",
		Short:   MsgBumpReleaseShort,
		Long:    MsgBumpReleaseLong,
		GroupID: "edit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.BumpRelease(commands.BumpReleaseOptions{
				SpecOptions: g.specOptions(specPath),
				Commit:      commit,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVar(&commit, "commit", "", MsgFlagCommit)
	_ = cmd.MarkFlagRequired("commit")
	return cmd
}

func newAddPatchesCmd(g *globalOptions) *cobra.Command {
	var specPath, manifest, dir, pattern string

	cmd := &cobra.Command{
		Use:     "add-patches",
		Short:   MsgAddPatchesShort,
		Long:    MsgAddPatchesLong,
		Example: MsgAddPatchesExample,
		GroupID: "edit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.AddPatches(commands.AddPatchesOptions{
				SpecOptions: g.specOptions(specPath),
				Manifest:    manifest,
				Dir:         dir,
				Pattern:     pattern,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", MsgFlagManifest)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringVar(&pattern, "pattern", "", MsgFlagPattern)
	cmd.MarkFlagsMutuallyExclusive("manifest", "dir")
	cmd.MarkFlagsOneRequired("manifest", "dir")
	cmd.MarkFlagsMutuallyExclusive("manifest", "pattern")
	_ = cmd.MarkFlagDirname("dir")
	return cmd
}

func newSetSourceCmd(g *globalOptions) *cobra.Command {
	var specPath, sourceID, value string

	cmd := &cobra.Command{
		Use:     "set-source",
		Short:   MsgSetSourceShort,
		GroupID: "edit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.SetSource(commands.SetSourceOptions{
				SpecOptions: g.specOptions(specPath),
				SourceID:    sourceID,
				Value:       value,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVar(&sourceID, "source-id", "", MsgFlagSourceID)
	cmd.Flags().StringVar(&value, "value", "", MsgFlagValue)
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newFixPrepCmd(g *globalOptions) *cobra.Command {
	var specPath, rootDir string

	cmd := &cobra.Command{
		Use:     "fix-prep",
		Short:   MsgFixPrepShort,
		GroupID: "edit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.FixPrep(commands.FixPrepOptions{
				SpecOptions: g.specOptions(specPath),
				RootDir:     rootDir,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVar(&rootDir, "root-dir", "", MsgFlagRootDir)
	_ = cmd.MarkFlagRequired("root-dir")
	return cmd
}

func newTagsCmd(g *globalOptions) *cobra.Command {
	var specPath, name, valid string

	cmd := &cobra.Command{
		Use:     "tags",
		Short:   MsgTagsShort,
		Long:    MsgTagsLong,
		GroupID: "query",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := types.TagFilter{Name: name}
			if valid != "" {
				b, err := strconv.ParseBool(valid)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "invalid --valid value %q", valid)
				}
				filter.Valid = types.Bool(b)
			}

			result, err := commands.ListTags(commands.TagsOptions{
				SpecOptions: g.specOptions(specPath),
				Filter:      filter,
			})
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().StringVar(&valid, "valid", "", MsgFlagValid)
	return cmd
}

func newReleaseCmd(g *globalOptions) *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:     "release",
		Short:   MsgReleaseShort,
		GroupID: "query",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Release(g.specOptions(specPath))
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	return cmd
}

func newChangelogCmd(g *globalOptions) *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:     "changelog",
		Short:   MsgChangelogShort,
		GroupID: "query",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Changelog(g.specOptions(specPath))
			if err != nil {
				return err
			}
			return g.render(cmd, result)
		},
	}

	addSpecFlag(cmd, &specPath)
	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var specPath string
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return err
			}

			loadOpts := config.LoadOptions{ConfigFile: g.configFile, Overrides: g.overrides()}
			if specPath != "" {
				loadOpts.SpecDir = filepath.Dir(specPath)
			}
			cfg, err := config.Load(loadOpts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", MsgFlagSpec)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "specedit version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SPECEDIT",
				Section: "1",
				Source:  "specedit " + version.Version,
				Manual:  "specedit manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
