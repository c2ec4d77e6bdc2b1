package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domsearch/pkg/graph"
	dsio "github.com/matzehuels/domsearch/pkg/io"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// solveFlags holds flags for the solve command.
type solveFlags struct {
	seed      uint64
	timeout   time.Duration
	workers   int
	maxRounds int64
	config    string
	output    string
	json      bool
	tui       bool
	best      bool
	refresh   bool
	cache     cacheFlags
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve [graph.gr]",
		Short: "Find a small dominating set",
		Long: `Search for a small dominating set of a PACE graph.

The search runs until --timeout elapses, --max-rounds rounds have run, or the
process receives SIGINT or SIGTERM. It then prints the smallest set found, in
PACE solution format unless --json is given. The graph is read from stdin when
no file is given.

The smallest verified set ever found for a graph is kept in a cache and
reported when it beats the current run.`,
		Example: `  # Run for 30 seconds with four workers
  domsearch solve instance.gr --timeout 30s --workers 4 -o instance.sol

  # PACE-style: read stdin, stop on SIGTERM
  domsearch solve < instance.gr > instance.sol

  # Use a tuned profile and watch progress
  domsearch solve instance.gr --config tuned.toml --tui`,
		ValidArgsFunction: completeGraphFiles,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSolve(cmd, path, flags)
		},
	}

	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed (worker i uses seed+i)")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 0, "stop after this long (0 = until interrupted)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", pipeline.DefaultWorkers, "number of concurrent solvers")
	cmd.Flags().Int64Var(&flags.maxRounds, "max-rounds", 0, "stop each worker after this many rounds (0 = no limit)")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "TOML solver profile; flags override its values")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the solution to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.json, "json", false, "write the solution as JSON")
	cmd.Flags().BoolVar(&flags.tui, "tui", false, "show live progress; press q to stop")
	cmd.Flags().BoolVar(&flags.best, "best", false, "write the best-known solution if it beats this run")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore the stored best-known solution")
	flags.cache.register(cmd)

	return cmd
}

// solveOptions merges the profile, if any, with explicitly set flags.
func solveOptions(cmd *cobra.Command, flags solveFlags) (pipeline.Options, error) {
	var opts pipeline.Options
	if flags.config != "" {
		var err error
		if opts, err = pipeline.LoadProfile(flags.config); err != nil {
			return opts, err
		}
	}

	set := cmd.Flags().Changed
	if flags.config == "" || set("seed") {
		opts.Seed = flags.seed
	}
	if flags.config == "" || set("timeout") {
		opts.Timeout = flags.timeout
	}
	if flags.config == "" || set("workers") {
		opts.Workers = flags.workers
	}
	if flags.config == "" || set("max-rounds") {
		opts.Solver.MaxRounds = flags.maxRounds
	}
	if set("refresh") {
		opts.Refresh = flags.refresh
	}
	return opts, opts.ValidateForSolve()
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, flags solveFlags) error {
	ctx := c.context(cmd)

	opts, err := solveOptions(cmd, flags)
	if err != nil {
		return err
	}

	g, err := pipeline.Parse(path, c.In)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded graph", "vertices", g.N(), "edges", g.M(), "multi_edges", g.HasMultiEdges())

	runner, err := c.newRunner(ctx, flags.cache, nil)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	var res *pipeline.Result
	if flags.tui {
		res, err = runSolveTUI(ctx, runner, g, opts)
	} else {
		res, err = c.solveLogged(ctx, runner, g, opts)
	}
	if err != nil {
		return err
	}

	sol := res.Solution
	if flags.best && res.BestKnown != nil {
		sol = res.BestKnown
	}
	return c.writeSolution(flags.output, sol, flags.json)
}

// solveLogged runs the solve with progress logged to stderr.
func (c *CLI) solveLogged(ctx context.Context, runner *pipeline.Runner, g *graph.Graph, opts pipeline.Options) (*pipeline.Result, error) {
	reporter := newSolveReporter(ctx, opts.Timeout)
	reporter.attach(&opts)

	res, err := runner.Solve(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	reporter.done(res)
	return res, nil
}

// writeSolution writes sol to path, or to c.Out when path is empty.
func (c *CLI) writeSolution(path string, sol *dsio.Solution, asJSON bool) error {
	write := func(w io.Writer) error {
		if asJSON {
			return dsio.WriteJSON(w, sol)
		}
		return dsio.WriteSolution(w, sol.Vertices)
	}
	if path == "" {
		return write(c.Out)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.Logger.Info("wrote solution", "path", path, "size", sol.Size)
	return nil
}
