package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	coloursArtist string
	coloursDryRun bool
)

var coloursCmd = &cobra.Command{
	Use:     "colours",
	Aliases: []string{"colors"},
	Short:   "List the colour palette of an artist's works",
	Long: `Query the COLOURPALETTE facet for an artist and list its colour tokens
in the order the API returns them. An absent facet lists nothing.`,
	Args: cobra.NoArgs,
	RunE: runColours,
}

func init() {
	coloursCmd.Flags().StringVarP(&coloursArtist, "artist", "a", "", "creator to filter by (default all)")
	coloursCmd.Flags().BoolVar(&coloursDryRun, "dry-run", false, "print the request URL without fetching")
	rootCmd.AddCommand(coloursCmd)
}

func runColours(cmd *cobra.Command, _ []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	if coloursDryRun {
		url, err := service.ColourFacetURL(cmd.Context(), coloursArtist)
		if err != nil {
			return fmt.Errorf("failed to build URL: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	}

	palette, err := service.Colours(cmd.Context(), coloursArtist)
	if err != nil {
		return fmt.Errorf("colour query failed: %w", err)
	}

	return render(cmd.OutOrStdout(), palette, func(w io.Writer) error {
		if len(palette.Colours) == 0 {
			_, err := fmt.Fprintf(w, "No colours found for %s.\n", palette.Artist)
			return err
		}
		fmt.Fprintf(w, "Colours for %s:\n", palette.Artist)
		for _, c := range palette.Colours {
			fmt.Fprintf(w, "  %s\n", c)
		}
		return nil
	})
}
