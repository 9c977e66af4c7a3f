package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

var groupsCollection string

var groupsCmd = &cobra.Command{
	Use:   "groups [period|creator|provider]",
	Short: "Group a stored collection",
	Long: `Group the artworks of a stored collection by time period, creator or
provider. Groups are listed in the order their key first appears; an
artwork with several creators is listed under each of them.

Defaults to grouping the latest collection by period.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"period", "creator", "provider"},
	RunE:      runGroups,
}

func init() {
	groupsCmd.Flags().StringVar(&groupsCollection, "collection", "latest", "collection ID")
	rootCmd.AddCommand(groupsCmd)
}

// groupView is the serialised form of one group.
type groupView struct {
	Key      string           `json:"key" yaml:"key"`
	Count    int              `json:"count" yaml:"count"`
	Artworks []domain.Artwork `json:"artworks" yaml:"artworks"`
}

func runGroups(cmd *cobra.Command, args []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	field := domain.GroupByPeriodField
	if len(args) == 1 {
		field, err = domain.ParseGroupField(args[0])
		if err != nil {
			return fmt.Errorf("%w: unknown grouping %q", err, args[0])
		}
	}

	idx, err := service.Groups(cmd.Context(), groupsCollection, field)
	if err != nil {
		return fmt.Errorf("failed to group collection: %w", err)
	}

	views := groupViews(idx)
	return render(cmd.OutOrStdout(), views, func(w io.Writer) error {
		if len(views) == 0 {
			_, err := fmt.Fprintln(w, "Collection has no artworks.")
			return err
		}
		for _, g := range views {
			fmt.Fprintf(w, "%s (%d)\n", g.Key, g.Count)
			for i := range g.Artworks {
				a := &g.Artworks[i]
				fmt.Fprintf(w, "  - %s [%s]\n", a.Title, strings.Join(a.Creators, ", "))
			}
		}
		return nil
	})
}

func groupViews(idx *domain.GroupIndex[domain.Artwork]) []groupView {
	groups := idx.Groups()
	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		artworks := make([]domain.Artwork, 0, len(g.Items))
		for _, a := range g.Items {
			artworks = append(artworks, *a)
		}
		views = append(views, groupView{Key: g.Key, Count: len(artworks), Artworks: artworks})
	}
	return views
}
