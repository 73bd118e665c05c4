package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/askiada/go-puzzlepipe/internal/config"
	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/internal/puzzles"
	"github.com/askiada/go-puzzlepipe/pkg/linesource"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectPuzzles(a.cfg, args)
			if err != nil {
				return err
			}

			runner := a.runner()
			out := cmd.OutOrStdout()

			for _, p := range selected {
				path := a.cfg.InputPath(p.Day())

				answers, err := runner.Run(cmd.Context(), p, linesource.File(path))
				if err != nil {
					if errors.Is(err, linesource.ErrIO) && !a.cfg.Strict {
						log.Warn().Err(err).Int("day", p.Day()).Str("input", path).Msg("skipping puzzle, input unreadable")

						continue
					}

					return err
				}

				printAnswers(out, p, answers)
			}

			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.Default()
			if err != nil {
				return err
			}

			selected, err := selectPuzzles(defaults, args)
			if err != nil {
				return err
			}

			runner := a.runner()
			out := cmd.OutOrStdout()

			for _, p := range selected {
				answers, err := runner.Check(cmd.Context(), p)
				if err != nil {
					return err
				}

				log.Info().Int("day", p.Day()).Int("answers", len(answers)).Msg("sample checked")
				fmt.Fprintf(out, MsgCheckOK, p.Day())
			}

			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := selectPuzzles(a.cfg, nil)
			if err != nil {
				return err
			}

			for _, p := range selected {
				fmt.Fprintf(cmd.OutOrStdout(), MsgPuzzleItem, p.Day(), p.Title())
			}

			return nil
		},
	}
}

func selectPuzzles(cfg *config.Config, args []string) ([]puzzle.Puzzle, error) {
	days, err := parseDays(args)
	if err != nil {
		return nil, err
	}

	reg, err := puzzles.Registry(cfg)
	if err != nil {
		return nil, err
	}

	return reg.Select(days...)
}

// printAnswers writes one line per answer followed by a blank line.
func printAnswers(w io.Writer, p puzzle.Puzzle, answers []puzzle.Answer) {
	for _, answer := range answers {
		fmt.Fprintf(w, MsgAnswer, p.Day(), answer)
	}

	fmt.Fprintln(w)
}
