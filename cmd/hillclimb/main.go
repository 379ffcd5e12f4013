// Command hillclimb prints the fewest steps from the start cell (and, for the
// multi-source variant, from any lowest cell) to the goal of a heightmap file.
//
//	hillclimb [--config run.hcl] [--variant single|multi|both] [--debug] <heightmap>
//
// An unreachable goal, or one not found within max_steps, is reported on
// stdout and is not a failure; malformed input or configuration exits with
// status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/frontier"
	"github.com/katalvlaran/hillclimb/heightmap"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the command and executes it against args (args[0] is the program name).
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cmd := &cli.Command{
		Name:      "hillclimb",
		Usage:     "fewest steps to the goal of a heightmap",
		ArgsUsage: "<heightmap>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "HCL run configuration `FILE`",
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "single, multi or both; overrides the config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return solve(cmd, stdout, stderr)
		},
	}

	return cmd.Run(ctx, args)
}

func solve(cmd *cli.Command, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("hillclimb: expected one heightmap path, got %d arguments", cmd.Args().Len())
	}
	mapPath := cmd.Args().First()

	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded configuration", "path", path)
	}
	if v := cmd.String("variant"); v != "" {
		variants, err := config.ParseVariants(v)
		if err != nil {
			return err
		}
		cfg.Variants = variants
	}

	g, err := heightmap.Load(mapPath, cfg.Alphabet)
	if err != nil {
		return err
	}
	logger.Debug("loaded heightmap", "path", mapPath, "rows", g.Rows(), "cols", g.Cols())

	opts := append(cfg.SearchOptions(), frontier.WithLogger(logger))
	for _, v := range cfg.Variants {
		began := time.Now()
		steps, err := frontier.Run(g, v, opts...)
		switch {
		case errors.Is(err, frontier.ErrUnreachable):
			fmt.Fprintf(stdout, "%s: unreachable\n", v)
		case errors.Is(err, frontier.ErrStepLimit):
			fmt.Fprintf(stdout, "%s: beyond max_steps (%d)\n", v, cfg.MaxSteps)
		case err != nil:
			return err
		default:
			fmt.Fprintf(stdout, "%s: %d\n", v, steps)
		}
		logger.Debug("variant done", "variant", v.String(), "elapsed", time.Since(began))
	}

	return nil
}
