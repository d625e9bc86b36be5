package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/specedit/pkg/config"
	"github.com/arthur-debert/specedit/pkg/diff"
	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/filesystem"
	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/specfile"
	"github.com/arthur-debert/specedit/pkg/types"
)

// SpecOptions are shared by every command operating on a spec file.
type SpecOptions struct {
	// SpecPath is the spec file to read or edit.
	SpecPath string
	// ConfigFile replaces the .specedit.toml lookup next to the spec.
	ConfigFile string
	// Overrides are flat config keys ("spec.dist") set from flags.
	Overrides map[string]interface{}
	// DryRun keeps every write in memory.
	DryRun bool

	// Fs is the filesystem holding the spec; the OS filesystem when nil.
	Fs afero.Fs
	// Now is the changelog clock; time.Now when nil.
	Now func() time.Time
}

type session struct {
	command string
	opts    SpecOptions
	cfg     *config.Config
	fs      types.FS
	spec    *specfile.Specfile
	before  string
	logger  zerolog.Logger
}

func openSession(command string, opts SpecOptions) (*session, error) {
	logger := logging.GetLogger("commands." + command)

	if opts.SpecPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no spec file given")
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.ConfigFile,
		SpecDir:    filepath.Dir(opts.SpecPath),
		Overrides:  opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	base := opts.Fs
	if base == nil {
		base = afero.NewOsFs()
	}
	var fsys types.FS
	if opts.DryRun {
		fsys = filesystem.NewDryRun(base)
	} else {
		fsys = filesystem.NewAferoFS(base)
	}

	before, err := readSpec(fsys, opts.SpecPath)
	if err != nil {
		return nil, err
	}

	spec, err := specfile.Open(fsys, opts.SpecPath, specfile.Options{
		Dist:            cfg.Spec.Dist,
		ChangelogAuthor: cfg.Changelog.Author,
		ChangelogEmail:  cfg.Changelog.Email,
		Now:             opts.Now,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("spec", opts.SpecPath).
		Bool("dry_run", opts.DryRun).
		Str("config", cfg.String()).
		Msg("Spec opened")

	return &session{
		command: command,
		opts:    opts,
		cfg:     cfg,
		fs:      fsys,
		spec:    spec,
		before:  before,
		logger:  logger,
	}, nil
}

func readSpec(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "spec file %s not found", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read spec file %s", path)
	}
	return string(data), nil
}

// finish compares the spec on disk with the text read at open time.
func (s *session) finish() (*types.EditResult, error) {
	after, err := readSpec(s.fs, s.opts.SpecPath)
	if err != nil {
		return nil, err
	}

	unified, err := diff.Unified(filepath.Base(s.opts.SpecPath), s.before, after)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to diff spec file")
	}

	return &types.EditResult{
		Command: s.command,
		Spec:    s.opts.SpecPath,
		Changed: after != s.before,
		DryRun:  s.opts.DryRun,
		Diff:    unified,
	}, nil
}

// logResult logs the outcome of an editing command
func (s *session) logResult(result *types.EditResult, err error) {
	event := s.logger.Info()
	if err != nil {
		event = s.logger.Error().Err(err)
	}

	event.
		Str("command", s.command).
		Str("spec", s.opts.SpecPath).
		Bool("dry_run", s.opts.DryRun)

	if result != nil {
		event.Bool("changed", result.Changed)
	}

	if err != nil {
		event.Msg("Command failed")
	} else {
		event.Msg("Command completed")
	}
}

// edit runs fn against the spec and reports what it changed.
func edit(command string, opts SpecOptions, fn func(s *session) error) (*types.EditResult, error) {
	s, err := openSession(command, opts)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(s.logger, command)
	defer done()

	if err := fn(s); err != nil {
		s.logResult(nil, err)
		return nil, err
	}

	result, err := s.finish()
	s.logResult(result, err)
	return result, err
}
