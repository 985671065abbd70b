package commands

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pathmend/pathmend/internal/version"
	"github.com/pathmend/pathmend/pkg/cobrax/topics"
	"github.com/pathmend/pathmend/pkg/config"
	"github.com/pathmend/pathmend/pkg/logging"
	"github.com/pathmend/pathmend/pkg/output"
	"github.com/pathmend/pathmend/pkg/privilege"
	"github.com/pathmend/pathmend/pkg/reconcile"
)

// ErrOperationFailed marks a reconciliation failure that has already been
// rendered, so main can exit nonzero without printing a second error.
var ErrOperationFailed = errors.New("operation failed")

// app carries the per-invocation runtime built by the root command's
// PersistentPreRunE and shared by every verb.
type app struct {
	cfg      *config.Config
	rec      *reconcile.Reconciler
	renderer *output.Renderer
	format   output.Format
	runner   privilege.Runner

	// Flag storage. Values are folded into the config as overrides
	// during setup; verbs read the resolved config, not these.
	simulate  bool
	force     bool
	keepState bool
	verbosity int
	outputArg string
	configArg string
	backupArg string
	runAs     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "pathmend",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage.
			_ = cmd.Help()
			return errors.New("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&a.simulate, "simulate", "n", false, MsgFlagSimulate)
	flags.BoolVar(&a.force, "force", false, MsgFlagForce)
	flags.BoolVar(&a.keepState, "keep-state", false, MsgFlagKeepState)
	flags.StringVarP(&a.outputArg, "output", "o", "", MsgFlagOutput)
	flags.StringVar(&a.configArg, "config", "", MsgFlagConfig)
	flags.StringVar(&a.backupArg, "backup", "", MsgFlagBackup)
	flags.StringVar(&a.runAs, "run-as", "", MsgFlagRunAs)

	// Disable automatic help command; the topic system installs its own.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "ops", Title: "OPERATIONS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "QUERIES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newDirCmd(a))
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newHardlinkCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newMoveCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newExistsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Debug().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// setup resolves configuration, wires logging, and builds the reconciler
// and renderer every verb uses.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("simulate") {
		overrides["simulate"] = a.simulate
	}
	if flags.Changed("verbose") {
		overrides["verbosity"] = a.verbosity
	}
	if flags.Changed("output") {
		overrides["output"] = a.outputArg
	}
	if flags.Changed("backup") {
		overrides["backup_suffix"] = a.backupArg
	}

	cfg, err := config.Load(a.configArg, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerWithFile(cfg.Verbosity, cfg.LogFile)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	a.format = output.Resolve(format, os.Stdout)
	a.renderer = output.NewRenderer(cmd.OutOrStdout(), a.format)

	// In simulate mode the engine's "would ..." narration goes to stderr,
	// keeping stdout clean for the rendered result.
	sink := logging.NewSink(logging.GetLogger("reconcile"))
	if cfg.Simulate && a.format != output.FormatJSON && a.format != output.FormatYAML {
		sink = sink.WithEcho(cmd.ErrOrStderr())
	}

	a.rec = reconcile.New(reconcile.Options{
		Sink:         sink,
		Simulate:     cfg.Simulate,
		BackupSuffix: cfg.BackupSuffix,
	})
	a.runner = privilege.NewProcessRunner()
	return nil
}

// perform runs fn, switching effective ids first when --run-as was given.
func (a *app) perform(fn func() error) error {
	if a.runAs == "" {
		return fn()
	}
	return a.runner.RunAs(a.runAs, fn)
}

// report renders the outcome and converts failures into the exit sentinel.
func (a *app) report(op, path string, outcome reconcile.Outcome) error {
	if err := a.renderer.Result(output.ResultOf(op, path, outcome)); err != nil {
		return err
	}
	if !outcome.Ok() {
		return ErrOperationFailed
	}
	return nil
}
