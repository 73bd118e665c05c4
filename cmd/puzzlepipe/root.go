package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/askiada/go-puzzlepipe/internal/config"
	"github.com/askiada/go-puzzlepipe/internal/logging"
	"github.com/askiada/go-puzzlepipe/internal/puzzle"
)

var errInvalidDay = errors.New("invalid day")

type flags struct {
	verbosity  int
	configPath string
	strict     bool
	measure    bool
	graphDir   string
}

// app is what every subcommand shares once the root command has loaded the
// configuration.
type app struct {
	flags flags
	cfg   *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "puzzlepipe",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.flags.strict, "strict", false, MsgFlagStrict)
	rootCmd.PersistentFlags().BoolVar(&a.flags.measure, "measure", false, MsgFlagMeasure)
	rootCmd.PersistentFlags().StringVar(&a.flags.graphDir, "graph-dir", "", MsgFlagGraphDir)

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newListCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	flagSet := cmd.Flags()
	if flagSet.Changed("strict") {
		cfg.Strict = a.flags.strict
	}

	if flagSet.Changed("measure") {
		cfg.Measure = a.flags.measure
	}

	if flagSet.Changed("graph-dir") {
		cfg.GraphDir = a.flags.graphDir
	}

	if err := logging.Setup(a.flags.verbosity, cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	if cfg.GraphDir != "" {
		if err := os.MkdirAll(cfg.GraphDir, 0o755); err != nil {
			return errors.Wrapf(err, "unable to create graph directory %s", cfg.GraphDir)
		}
	}

	log.Debug().Str("command", cmd.Name()).Str("input_dir", cfg.InputDir).Msg("command started")

	a.cfg = cfg

	return nil
}

func (a *app) runner() *puzzle.Runner {
	opts := []puzzle.RunnerOption{puzzle.WithLogger(logging.Component("pipeline"))}

	if a.cfg.Measure {
		opts = append(opts, puzzle.WithMeasure())
	}

	if a.cfg.GraphDir != "" {
		opts = append(opts, puzzle.WithGraphDir(a.cfg.GraphDir))
	}

	return puzzle.NewRunner(opts...)
}

// parseDays turns command arguments into day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))

	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day <= 0 {
			return nil, errors.Wrapf(errInvalidDay, "%q", arg)
		}

		days = append(days, day)
	}

	return days, nil
}
