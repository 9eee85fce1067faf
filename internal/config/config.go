// Package config loads puzzle definitions from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gsearch/npuzzle"
)

// DefaultHeuristic is used when a file does not name one.
const DefaultHeuristic = npuzzle.HeuristicManhattan

type PuzzleConfig struct {
	Version int `yaml:"version"`
	Puzzle  struct {
		Size int `yaml:"size"`
		// Tiles and Board are alternatives; Tiles wins when both are set.
		Tiles []int  `yaml:"tiles"`
		Board string `yaml:"board"`
	} `yaml:"puzzle"`
	Search struct {
		Heuristic string `yaml:"heuristic"`
		LogLevel  string `yaml:"log_level"`
		Trace     bool   `yaml:"trace"`
	} `yaml:"search"`
}

// HeuristicName returns the configured heuristic, defaulting to DefaultHeuristic.
func (c *PuzzleConfig) HeuristicName() string {
	if c.Search.Heuristic == "" {
		return DefaultHeuristic
	}
	return c.Search.Heuristic
}

// StartBoard builds the configured board. A non-zero size must agree with the tiles.
func (c *PuzzleConfig) StartBoard() (npuzzle.Board, error) {
	var (
		board npuzzle.Board
		err   error
	)
	switch {
	case len(c.Puzzle.Tiles) > 0:
		board, err = npuzzle.NewBoardFromTiles(c.Puzzle.Tiles)
	case c.Puzzle.Board != "":
		board, err = npuzzle.ParseBoard(c.Puzzle.Board)
	default:
		return npuzzle.Board{}, errors.New("puzzle has neither tiles nor board")
	}
	if err != nil {
		return npuzzle.Board{}, err
	}
	if c.Puzzle.Size != 0 && c.Puzzle.Size != board.Size() {
		return npuzzle.Board{}, fmt.Errorf("puzzle size %d does not match %dx%d tiles", c.Puzzle.Size, board.Size(), board.Size())
	}
	return board, nil
}

// LoadPuzzleConfig reads and validates the YAML file at path.
func LoadPuzzleConfig(path string) (*PuzzleConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePuzzleConfig(b)
}

// ParsePuzzleConfig decodes and validates a YAML puzzle definition.
func ParsePuzzleConfig(b []byte) (*PuzzleConfig, error) {
	var cfg PuzzleConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported puzzle config version: %d", cfg.Version)
	}
	if _, err := npuzzle.HeuristicByName(cfg.HeuristicName()); err != nil {
		return nil, err
	}

	return &cfg, nil
}
