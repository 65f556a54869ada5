package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dshills/diskview/internal/app"
	"github.com/dshills/diskview/internal/config"
	"github.com/dshills/diskview/internal/dispatcher"
	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/keymap"
	"github.com/dshills/diskview/internal/input/source"
	"github.com/dshills/diskview/internal/logging"
	"github.com/dshills/diskview/internal/terminal"
)

// options holds the command line flags.
type options struct {
	configFile string
	replay     string
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "diskview [path]",
		Short: "Browse disk usage and delete what takes up space",
		Long: `diskview lists a directory's entries by size in a keyboard driven
terminal dashboard. Enter descends into a directory, Esc goes back up and
Backspace deletes the selected entry after confirmation.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return run(cmd, opts, root)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/diskview/config.toml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&opts.replay, "replay", "", "replay keys from a script file instead of reading the terminal")

	rootCmd.AddCommand(newKeysCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// loadConfig reads the configuration with the persistent flags bound on top.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.configFile != "" {
		mgr.SetConfigFile(opts.configFile)
	}

	bindings := map[string]string{
		"logging.level": "log-level",
		"logging.file":  "log-file",
	}
	for key, name := range bindings {
		if err := mgr.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr.Get()
}

// newNormalizer returns the default chord synonyms extended with the
// configured alias file.
func newNormalizer(fs afero.Fs, cfg *config.Config) (*chord.Normalizer, error) {
	if cfg.Input.KeymapFile == "" {
		return chord.DefaultNormalizer(), nil
	}

	aliases, err := chord.LoadAliasFile(fs, cfg.Input.KeymapFile)
	if err != nil {
		return nil, err
	}
	n, err := chord.FromAliases(aliases)
	if err != nil {
		return nil, fmt.Errorf("keymap file %s: %w", cfg.Input.KeymapFile, err)
	}
	return n, nil
}

// watchKeymap swaps the dispatcher's normalizer whenever the alias file
// changes.
func watchKeymap(ctx context.Context, path string, d *dispatcher.Dispatcher, logger zerolog.Logger) error {
	return chord.WatchAliasFile(ctx, path, reloadKeymap(path, d, logging.Component(logger, "keymap")))
}

// reloadKeymap installs reloaded aliases. A file that fails to load leaves
// the current keys in place.
func reloadKeymap(path string, d *dispatcher.Dispatcher, log zerolog.Logger) chord.ReloadFunc {
	return func(aliases map[chord.Chord][]string, err error) {
		if err == nil {
			var n *chord.Normalizer
			if n, err = chord.FromAliases(aliases); err == nil {
				d.SetNormalizer(n)
				log.Info().Str("file", path).Int("chords", len(aliases)).Msg("keymap reloaded")
				return
			}
		}
		log.Warn().Err(err).Str("file", path).Msg("keymap reload failed; keeping current keys")
	}
}

func newLogger(cfg *config.Config) (zerolog.Logger, func() error, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}
	return logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		TimeFormat: time.RFC3339,
	})
}

func run(cmd *cobra.Command, opts *options, root string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx := logging.WithContext(cmd.Context(), logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()

	normalizer, err := newNormalizer(fs, cfg)
	if err != nil {
		return err
	}
	registry := keymap.DefaultRegistry()
	if err := registry.Complete(); err != nil {
		return err
	}

	d := dispatcher.New(registry, normalizer,
		dispatcher.DefaultConfig().WithRedrawOnModeChange(cfg.Input.RedrawOnModeChange))
	d.SetLogger(logging.Component(logger, "dispatcher"))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	scanner, err := app.NewScanner(fs, cfg.Scan.Ignore, cfg.Scan.Workers)
	if err != nil {
		return err
	}

	var (
		term *terminal.Terminal
		src  source.Source
	)
	if opts.replay != "" {
		f, err := os.Open(opts.replay)
		if err != nil {
			return err
		}
		defer f.Close()

		script := source.NewScript(f)
		defer func() {
			if err := script.Err(); err != nil {
				logger.Error().Err(err).Msg("replay stopped")
				fmt.Fprintf(os.Stderr, "replay: %v\n", err)
			}
		}()
		src = script

		sim := tcell.NewSimulationScreen("")
		sim.SetSize(cfg.UI.MinWidth*2, cfg.UI.MinHeight*2)
		term = terminal.NewWithScreen(sim)
	} else {
		term, err = terminal.New()
		if err != nil {
			return fmt.Errorf("failed to create terminal: %w", err)
		}
		src = term
	}

	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Close()

	ctrl := app.New(fs, scanner, absRoot, term, app.OptionsFromConfig(cfg))
	ctrl.SetLogger(logging.Component(logger, "app"))
	ctrl.SetLegend(app.NewReloadingLegend(registry, d.Normalizer))
	term.OnResize(ctrl.Resize)

	go func() {
		<-ctx.Done()
		term.Close()
	}()

	if cfg.Input.KeymapFile != "" && cfg.Input.WatchKeymap && opts.replay == "" {
		if err := watchKeymap(ctx, cfg.Input.KeymapFile, d, logger); err != nil {
			logger.Warn().Err(err).Msg("keymap file will not be reloaded")
		}
	}

	if err := ctrl.Start(); err != nil {
		return err
	}

	err = d.Run(ctx, src, ctrl)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if opts.replay != "" {
		st := ctrl.State()
		fmt.Fprintf(cmd.OutOrStdout(), "dir=%s mode=%s exited=%t\n", ctrl.Dir(), st.Mode, ctrl.Exited())
	}
	return nil
}
