package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/routegen/internal/board"
	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/generator"
	"svw.info/routegen/internal/infrastructure/storage"
	"svw.info/routegen/internal/scorer"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	root := &cobra.Command{
		Use:           "routegen",
		Short:         "Generate and score climbing routes on a 35x35 board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(generateCmd(), scoreCmd())
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func loadBoard(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return board.Load(f)
}

func generateCmd() *cobra.Command {
	var (
		layout    string
		out       string
		seed      int64
		randomize bool
		retries   int
		p         = domain.DefaultParams()
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one route, print its score and export it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(layout)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			if randomize {
				p = domain.RandomParams(rng)
				logger.Info("randomized parameters",
					"minReach", p.MinReach, "maxReach", p.MaxReach,
					"minMoves", p.MinMoves, "maxMoves", p.MaxMoves,
					"twoFinishes", p.AllowTwoFinishes, "freeDirection", p.AllowDownwardOrSideways)
			}
			g := generator.NewWithRand(b, rng)

			ctx := context.Background()
			var route *domain.Route
			for attempt := 0; ; attempt++ {
				r, st, err := g.Generate(ctx, p)
				if err == nil {
					route = r
					logger.Info("generated", "holds", len(r.Holds), "attempts", st.Attempts, "dur", st.Duration)
					break
				}
				// Generation is independently retriable; retry a few times
				// before asking for different parameters.
				if !errors.Is(err, domain.ErrNoRoute) || attempt >= retries {
					return err
				}
				logger.Warn("generation failed, retrying", "err", err)
			}

			res, err := scorer.New(b).Score(ctx, route)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Difficulty: %s (score %.2f)\n", res.DifficultyLabel, res.DifficultyScore)
			if res.GoodFlow {
				fmt.Fprintf(cmd.OutOrStdout(), "Good Flow (%.0f%%)\n", res.FlowScore*100)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return storage.WriteRoute(w, route)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "./boardLayout.txt", "board layout file")
	cmd.Flags().StringVar(&out, "out", "", "route JSON output file (default stdout)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 = time-based)")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "pick random generation parameters")
	cmd.Flags().IntVar(&retries, "retries", 5, "whole-route retries before giving up")
	cmd.Flags().IntVar(&p.MinReach, "min-reach", p.MinReach, "minimum reach (2..20)")
	cmd.Flags().IntVar(&p.MaxReach, "max-reach", p.MaxReach, "maximum reach (2..20)")
	cmd.Flags().IntVar(&p.MinMoves, "min-moves", p.MinMoves, "minimum middle moves (2..20)")
	cmd.Flags().IntVar(&p.MaxMoves, "max-moves", p.MaxMoves, "maximum middle moves (2..20)")
	cmd.Flags().BoolVar(&p.AllowDownwardOrSideways, "allow-downward", false, "allow downward or sideways moves")
	cmd.Flags().BoolVar(&p.AllowTwoFinishes, "two-finishes", true, "allow one or two finish holds")
	return cmd
}

func scoreCmd() *cobra.Command {
	var (
		layout string
		in     string
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an exported route JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(layout)
			if err != nil {
				return err
			}
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()
			route, err := storage.ReadRoute(f)
			if err != nil {
				return err
			}
			res, err := scorer.New(b).Score(context.Background(), route)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Difficulty: %s (score %.2f)\n", res.DifficultyLabel, res.DifficultyScore)
			fmt.Fprintf(cmd.OutOrStdout(), "Flow: %.0f%%", res.FlowScore*100)
			if res.GoodFlow {
				fmt.Fprint(cmd.OutOrStdout(), " (Good Flow)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "./boardLayout.txt", "board layout file")
	cmd.Flags().StringVar(&in, "in", "", "route JSON input file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
