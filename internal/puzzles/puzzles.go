// Package puzzles registers every day.
package puzzles

import (
	"github.com/askiada/go-puzzlepipe/internal/config"
	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day01"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day02"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day03"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day04"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day05"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day06"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day07"
)

// Registry returns every puzzle set up with cfg.
func Registry(cfg *config.Config) (*puzzle.Registry, error) {
	reg := puzzle.NewRegistry()

	all := []puzzle.Puzzle{
		day01.New(cfg.Calories.TopK),
		day02.New(),
		day03.New(),
		day04.New(),
		day05.New(),
		day06.New(cfg.Markers.Packet, cfg.Markers.Message),
		day07.New(day07.Limits{
			DiskSize:      cfg.Filesystem.DiskSize,
			RequiredSpace: cfg.Filesystem.RequiredSpace,
			SmallDirLimit: cfg.Filesystem.SmallDirLimit,
		}),
	}

	for _, p := range all {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
