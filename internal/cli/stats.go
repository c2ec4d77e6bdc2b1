package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [graph.gr]",
		Short: "Print graph statistics",
		Long: `Print vertex, edge and degree statistics of a PACE graph, and how many
vertices survive candidate reduction. Reads stdin when no file is given.`,
		ValidArgsFunction: completeGraphFiles,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			g, err := pipeline.Parse(path, c.In)
			if err != nil {
				return err
			}

			st := g.Stats()
			eligible := 0
			for _, ok := range domset.Reduce(g.Simple()) {
				if ok {
					eligible++
				}
			}

			if asJSON {
				out := struct {
					graph.Stats
					Candidates int `json:"candidates"`
				}{st, eligible}
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			hash, err := pipeline.GraphHash(g)
			if err != nil {
				return err
			}
			printKeyValue(c.Out, "Vertices", strconv.Itoa(st.Vertices))
			printKeyValue(c.Out, "Edges", strconv.Itoa(st.Edges))
			printKeyValue(c.Out, "Degree", fmt.Sprintf("min %d, max %d, mean %.2f, stddev %.2f", st.MinDegree, st.MaxDegree, st.MeanDegree, st.StdDev))
			printKeyValue(c.Out, "Isolated", strconv.Itoa(st.Isolated))
			printKeyValue(c.Out, "Candidates", strconv.Itoa(eligible))
			if st.MultiEdges {
				printWarning(c.Out, "Graph has parallel edges; the solver ignores duplicates")
			}
			printDetail(c.Out, "Hash: %s", hash)
			if path != "" {
				printNextStep(c.Out, "Search", appName+" solve "+path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print statistics as JSON")
	return cmd
}
