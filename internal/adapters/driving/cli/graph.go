package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

var graphCollection string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Derive the artwork graph of a stored collection",
	Long: `Derive the graph linking artworks to their creators, periods and
providers. Creators credited on the same artwork are linked by a
collaboration edge weighted by the number of shared artworks.

Use --format json for a nodes/links document suitable for graph tools.`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphCollection, "collection", "latest", "collection ID")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	graph, err := service.Graph(cmd.Context(), graphCollection)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	return render(cmd.OutOrStdout(), graph, func(w io.Writer) error {
		return writeGraph(w, graph)
	})
}

func writeGraph(w io.Writer, g *domain.Graph) error {
	fmt.Fprintf(w, "%d nodes, %d links\n\n", len(g.Nodes), len(g.Links))

	nodeTypes := []domain.NodeType{domain.NodeArtwork, domain.NodeCreator, domain.NodePeriod, domain.NodeProvider}
	for _, nt := range nodeTypes {
		fmt.Fprintf(w, "  %-10s %d\n", nt, len(g.NodesOfType(nt)))
	}

	collaborations := g.LinksOfType(domain.LinkCollaboratedWith)
	if len(collaborations) == 0 {
		return nil
	}

	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}

	fmt.Fprintln(w, "\nCollaborations:")
	t := newTable("CREATOR", "CREATOR", "SHARED")
	for _, l := range collaborations {
		t.addRow(labels[l.Source], labels[l.Target], fmt.Sprint(l.Weight))
	}
	return t.write(w)
}
