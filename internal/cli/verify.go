package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/errors"
	dsio "github.com/matzehuels/domsearch/pkg/io"
)

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <graph.gr> <solution.sol>",
		Short: "Check that a solution is a dominating set",
		Long: `Check a PACE solution file against a graph.

Exits with a non-zero status and names the first undominated vertex (1-based)
if the solution does not dominate the graph.`,
		ValidArgsFunction: completeGraphFiles,
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := dsio.ReadGraphFile(args[0])
			if err != nil {
				return err
			}
			vertices, err := dsio.ReadSolutionFile(args[1], g.N())
			if err != nil {
				return err
			}

			if err := domset.Verify(g, vertices); err != nil {
				var v *errors.ViolationError
				if errors.As(err, &v) {
					printError(c.Out, "Vertex %d is not dominated", v.Vertex+1)
				} else {
					printError(c.Out, "%s", errors.UserMessage(err))
				}
				return err
			}

			printSuccess(c.Out, "Valid dominating set")
			printKeyValue(c.Out, "Size", strconv.Itoa(len(vertices)))
			printKeyValue(c.Out, "Vertices", strconv.Itoa(g.N()))
			return nil
		},
	}
}
