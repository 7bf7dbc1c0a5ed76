// Command riskpath reads a square grid of digit risk levels and prints the
// lowest total risk of walking from the top-left to the bottom-right cell,
// once per requested tile factor.
//
// Usage:
//
//	riskpath -input grid.txt -tiles 1,5
//	cat grid.txt | riskpath -queue fifo -path
//
// Settings may also come from a YAML file (-config), a .env file, or
// RISKPATH_* environment variables; flags win over all of them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/internal/logger"
	"github.com/katalvlaran/tilepath/shortest"
	"github.com/katalvlaran/tilepath/tilegrid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logFailure(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// logFailure reports the error run returned. The configured level may never
// have been read, so it logs at error level through a fresh logger.
func logFailure(w io.Writer, err error) {
	log := logger.New(zerolog.LevelErrorValue, w)
	log.Error().Err(err).Msg("riskpath failed")
}

// options are the command-line flags after parsing.
type options struct {
	configPath string
	envFile    string
	render     bool
	path       bool
}

// run is main without the process globals, so tests can drive it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("riskpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts     options
		input    = fs.String("input", "", "grid file path, '-' for stdin")
		tiles    = fs.String("tiles", "", "comma-separated tile factors, e.g. 1,5")
		queue    = fs.String("queue", "", "frontier discipline: priority or fifo")
		logLevel = fs.String("log-level", "", "log level: debug, info, warn, error")
		maxCost  = fs.Int("max-cost", -1, "skip paths costing more than this; -1 for no cap")
	)
	fs.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	fs.StringVar(&opts.envFile, "env", ".env", "optional .env file")
	fs.BoolVar(&opts.render, "render", false, "print the tiled grid before solving")
	fs.BoolVar(&opts.path, "path", false, "print the cheapest route as row,col pairs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// flags override file and environment
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "tiles":
			ts, err := config.ParseTiles(*tiles)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Tiles = ts
		case "queue":
			cfg.Queue = *queue
		case "log-level":
			cfg.LogLevel = *logLevel
		case "max-cost":
			cfg.MaxCost = *maxCost
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, stderr)
	log.Debug().
		Str("input", cfg.Input).
		Ints("tiles", cfg.Tiles).
		Str("queue", cfg.Queue).
		Int("max_cost", cfg.MaxCost).
		Msg("config")

	base, err := readGrid(cfg.Input, stdin)
	if err != nil {
		return err
	}
	log.Info().Int("size", base.BaseSize()).Msg("grid parsed")

	results, err := solveAll(ctx, base, cfg, log)
	if err != nil {
		return err
	}

	var out strings.Builder
	for i, k := range cfg.Tiles {
		if opts.render {
			g, err := base.Tile(k)
			if err != nil {
				return err
			}
			fmt.Fprint(&out, g)
		}
		fmt.Fprintf(&out, "tiles=%d cost=%d\n", k, results[i].Cost)
		if opts.path {
			fmt.Fprintln(&out, formatPath(results[i].Path))
		}
	}

	_, err = io.WriteString(stdout, out.String())
	return err
}

func readGrid(input string, stdin io.Reader) (*tilegrid.Grid, error) {
	if input == "-" {
		return tilegrid.ParseReader(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tilegrid.ParseReader(f)
}

// solveAll solves every tile factor concurrently over the shared base grid.
// The first failure cancels the remaining searches.
func solveAll(ctx context.Context, base *tilegrid.Grid, cfg *config.Config, log zerolog.Logger) ([]shortest.Result, error) {
	results := make([]shortest.Result, len(cfg.Tiles))
	g, gctx := errgroup.WithContext(ctx)

	for i, k := range cfg.Tiles {
		g.Go(func() error {
			grid, err := base.Tile(k)
			if err != nil {
				return err
			}
			opts := []shortest.Option{
				shortest.WithContext(gctx),
				shortest.WithQueue(cfg.QueueKind()),
			}
			if cfg.MaxCost >= 0 {
				opts = append(opts, shortest.WithMaxCost(cfg.MaxCost))
			}

			started := time.Now()
			res, err := shortest.Route(grid, tilegrid.Cell{}, grid.Corner(), opts...)
			if err != nil {
				return fmt.Errorf("tiles=%d: %w", k, err)
			}

			log.Info().
				Int("tiles", k).
				Int("cost", res.Cost).
				Int("relaxations", res.Relaxations).
				Dur("elapsed", time.Since(started)).
				Msg("solved")
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatPath(path []tilegrid.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("%d,%d", c.Row, c.Col)
	}
	return strings.Join(parts, " ")
}
