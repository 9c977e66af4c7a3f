package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"collections"},
	Short:   "Manage stored collections",
	Long:    `List, show and delete collections stored by previous fetches.`,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored collections, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

var collectionShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored collection (default latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCollectionShow,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionDelete,
}

func init() {
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionShowCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	rootCmd.AddCommand(collectionCmd)
}

func runCollectionList(cmd *cobra.Command, _ []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	summaries, err := service.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	return render(cmd.OutOrStdout(), summaries, func(w io.Writer) error {
		if len(summaries) == 0 {
			_, err := fmt.Fprintln(w, "No collections stored. Run 'artgraph artworks' to fetch one.")
			return err
		}
		t := newTable("ID", "QUERY", "ARTWORKS", "EXCLUDED", "FETCHED")
		for i := range summaries {
			s := &summaries[i]
			t.addRow(s.ID, s.Query.String(), fmt.Sprint(s.Artworks), fmt.Sprint(s.Excluded),
				s.FetchedAt.Local().Format("2006-01-02 15:04"))
		}
		return t.write(w)
	})
}

func runCollectionShow(cmd *cobra.Command, args []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	collection, err := service.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}

	return render(cmd.OutOrStdout(), collection, func(w io.Writer) error {
		return writeCollection(w, collection)
	})
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	service, err := requireCollections()
	if err != nil {
		return err
	}

	if err := service.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	cmd.Printf("Deleted collection %s\n", args[0])
	return nil
}
