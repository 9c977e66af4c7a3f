package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

var (
	artworksArtist  string
	artworksColours []string
	artworksPages   int
	artworksDryRun  bool
)

var artworksCmd = &cobra.Command{
	Use:   "artworks",
	Short: "Fetch artworks and store them as a collection",
	Long: `Fetch artwork records from the Europeana search API, normalise them
and store the result as a new collection.

Records without an image are excluded. Missing titles, periods, creators
and providers are filled with "Untitled", "Unknown Period",
"Unknown Artist" and "Unknown Provider".

Examples:
  artgraph artworks
  artgraph artworks --artist Rembrandt --colour '#000000'
  artgraph artworks --pages 3
  artgraph artworks --artist Vermeer --dry-run`,
	Args: cobra.NoArgs,
	RunE: runArtworks,
}

func init() {
	artworksCmd.Flags().StringVarP(&artworksArtist, "artist", "a", "", "creator to filter by (default all)")
	artworksCmd.Flags().StringArrayVarP(&artworksColours, "colour", "c", nil, "colour palette token, repeatable")
	artworksCmd.Flags().IntVarP(&artworksPages, "pages", "p", 0, "number of result pages to fetch (default from settings)")
	artworksCmd.Flags().BoolVar(&artworksDryRun, "dry-run", false, "print the request URL without fetching")
	rootCmd.AddCommand(artworksCmd)
}

func runArtworks(cmd *cobra.Command, _ []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	if artworksPages < 0 {
		return fmt.Errorf("%w: pages must not be negative", domain.ErrInvalidInput)
	}

	query := domain.NewArtworkQuery(artworksArtist, artworksColours...)

	if artworksDryRun {
		url, err := service.ArtworkURL(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to build URL: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	}

	collection, err := service.Fetch(cmd.Context(), query, driving.FetchOptions{Pages: artworksPages})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	return render(cmd.OutOrStdout(), collection, func(w io.Writer) error {
		return writeCollection(w, collection)
	})
}

// writeCollection prints a collection header and its artworks table.
func writeCollection(w io.Writer, c *domain.Collection) error {
	fmt.Fprintf(w, "Collection %s (%s)\n", c.ID, c.Query)
	fmt.Fprintf(w, "  %d artworks, %d excluded, %d total results\n", len(c.Artworks), c.Excluded, c.TotalResults)
	fmt.Fprintf(w, "  fetched %s\n\n", c.FetchedAt.Local().Format("2006-01-02 15:04:05"))

	if len(c.Artworks) == 0 {
		_, err := fmt.Fprintln(w, "No artworks found.")
		return err
	}

	t := newTable("#", "TITLE", "PERIOD", "CREATORS", "PROVIDER")
	for i := range c.Artworks {
		a := &c.Artworks[i]
		t.addRow(fmt.Sprint(i+1), a.Title, a.TimePeriod, strings.Join(a.Creators, ", "), a.Provider)
	}
	return t.write(w)
}
