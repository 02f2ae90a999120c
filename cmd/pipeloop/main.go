// Command pipeloop traces the pipe loop in a puzzle map and reports the
// farthest tile from Start and the number of tiles the loop encloses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/input"
	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/render"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	parallel   int
	plain      bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pipeloop",
		Short: "Trace the pipe loop in a map of pipe tiles",
		Long: `pipeloop reads a rectangular map of pipe symbols (| - L J 7 F),
ground (.) and a single start tile (S), follows the loop that runs through S,
and answers two questions about it:

  farthest   steps along the loop to the tile farthest from S
  enclosed   number of tiles strictly inside the loop

The map file defaults to the "input" entry of the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "pipeloop.yaml", "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&a.parallel, "parallel", "p", -1, "goroutines for the enclosure scan (0 = sequential, default from config)")

	farthestCmd := &cobra.Command{
		Use:   "farthest [file]",
		Short: "Print the number of steps to the farthest loop tile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), an.Farthest)
			return err
		},
	}

	enclosedCmd := &cobra.Command{
		Use:   "enclosed [file]",
		Short: "Print the number of tiles enclosed by the loop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), an.Enclosure.Count)
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Draw the loop with enclosed tiles marked, followed by a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}
			r := render.New(a.plain || a.cfg.Render.Plain)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", r.Render(an), r.Summary(an))
			return err
		},
	}
	showCmd.Flags().BoolVar(&a.plain, "plain", false, "disable colors")

	root.AddCommand(farthestCmd, enclosedCmd, showCmd)
	return root
}

// init loads the config and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.parallel >= 0 {
		cfg.ParallelRows = a.parallel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.LogLevel()
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// analyze reads the map named by args (or the configured input) and runs
// the loop analysis on it.
func (a *app) analyze(cmd *cobra.Command, args []string) (*loop.Analysis, error) {
	path := a.cfg.Input
	if len(args) == 1 {
		path = args[0]
	}

	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}
	g, err := pipegrid.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("map loaded",
		zap.String("path", path),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Stringer("start", g.Start()))

	an, err := loop.Analyze(g,
		loop.WithContext(cmd.Context()),
		loop.WithParallelRows(a.cfg.ParallelRows),
		loop.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return an, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
