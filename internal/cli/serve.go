package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domsearch/internal/server"
	"github.com/matzehuels/domsearch/pkg/cache"
)

// serveKeyPrefix keeps server entries apart from CLI entries in a shared store.
const serveKeyPrefix = "serve:"

// shutdownTimeout bounds how long in-flight solves may take to drain.
const shutdownTimeout = 15 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		maxWorkers  int
		maxVertices int
		flags       cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Start an HTTP server that solves graphs on request.

  POST /solve?timeout=2s&seed=1&workers=2   body: PACE graph, reply: JSON solution
  GET  /healthz
  GET  /version

Best-known solutions are shared with other servers through --redis.`,
		Example: `  domsearch serve --addr :8080 --redis redis://localhost:6379/0
  curl --data-binary @small.gr 'localhost:8080/solve?timeout=5s'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.context(cmd)
			runner, err := c.newRunner(ctx, flags, cache.NewScopedKeyer(cache.NewDefaultKeyer(), serveKeyPrefix))
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			srv := server.New(runner, c.Logger)
			if maxWorkers > 0 {
				srv.MaxWorkers = maxWorkers
			}
			srv.MaxVertices = maxVertices
			return c.serve(ctx, srv.NewHTTPServer(addr))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "cap on workers per request (default: 4 x CPUs)")
	cmd.Flags().IntVar(&maxVertices, "max-vertices", server.DefaultMaxVertices, "largest vertex count a request may declare (0 = no cap)")
	flags.register(cmd)

	return cmd
}

// serve runs hs until ctx is done, then shuts it down gracefully. Request
// contexts derive from ctx, so running solves stop and reply with their best
// set before the server closes.
func (c *CLI) serve(ctx context.Context, hs *http.Server) error {
	hs.BaseContext = func(net.Listener) context.Context { return ctx }

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", hs.Addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
