package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// mockCollectionService implements driving.CollectionService.
type mockCollectionService struct {
	FetchFunc          func(ctx context.Context, query domain.ArtworkQuery, opts driving.FetchOptions) (*domain.Collection, error)
	ColoursFunc        func(ctx context.Context, artist string) (*driving.ColourPalette, error)
	ArtworkURLFunc     func(ctx context.Context, query domain.ArtworkQuery) (string, error)
	ColourFacetURLFunc func(ctx context.Context, artist string) (string, error)
	GetFunc            func(ctx context.Context, id string) (*domain.Collection, error)
	ListFunc           func(ctx context.Context) ([]domain.CollectionSummary, error)
	DeleteFunc         func(ctx context.Context, id string) error
	GroupsFunc         func(ctx context.Context, id string, field domain.GroupField) (*domain.GroupIndex[domain.Artwork], error)
	GraphFunc          func(ctx context.Context, id string) (*domain.Graph, error)
}

func (m *mockCollectionService) Fetch(
	ctx context.Context, query domain.ArtworkQuery, opts driving.FetchOptions,
) (*domain.Collection, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query, opts)
	}
	return testCollection(), nil
}

func (m *mockCollectionService) Colours(ctx context.Context, artist string) (*driving.ColourPalette, error) {
	if m.ColoursFunc != nil {
		return m.ColoursFunc(ctx, artist)
	}
	return &driving.ColourPalette{Artist: artist}, nil
}

func (m *mockCollectionService) ArtworkURL(ctx context.Context, query domain.ArtworkQuery) (string, error) {
	if m.ArtworkURLFunc != nil {
		return m.ArtworkURLFunc(ctx, query)
	}
	return "https://api.example.org/search.json", nil
}

func (m *mockCollectionService) ColourFacetURL(ctx context.Context, artist string) (string, error) {
	if m.ColourFacetURLFunc != nil {
		return m.ColourFacetURLFunc(ctx, artist)
	}
	return "https://api.example.org/search.json?facet=COLOURPALETTE", nil
}

func (m *mockCollectionService) Get(ctx context.Context, id string) (*domain.Collection, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return testCollection(), nil
}

func (m *mockCollectionService) List(ctx context.Context) ([]domain.CollectionSummary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCollectionService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCollectionService) Groups(
	ctx context.Context, id string, field domain.GroupField,
) (*domain.GroupIndex[domain.Artwork], error) {
	if m.GroupsFunc != nil {
		return m.GroupsFunc(ctx, id, field)
	}
	return testCollection().Group(field)
}

func (m *mockCollectionService) Graph(ctx context.Context, id string) (*domain.Graph, error) {
	if m.GraphFunc != nil {
		return m.GraphFunc(ctx, id)
	}
	return testCollection().Graph(), nil
}

// mockSettingsService implements driving.SettingsService over an
// in-memory Settings value.
type mockSettingsService struct {
	settings    domain.Settings
	getErr      error
	validateErr error
	resetKeys   []string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultSettings()}
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsService) Set(key, value string) error {
	next := m.settings
	if err := next.Set(key, value); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	m.settings = next
	return nil
}

func (m *mockSettingsService) Reset(key string) error {
	m.resetKeys = append(m.resetKeys, key)
	defaults := domain.DefaultSettings()
	value, err := defaults.Get(key)
	if err != nil {
		return err
	}
	return m.settings.Set(key, value)
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) Defaults() domain.Settings {
	return domain.DefaultSettings()
}

func testCollection() *domain.Collection {
	return &domain.Collection{
		ID:           "c-1",
		Query:        domain.NewArtworkQuery("Rembrandt"),
		URL:          "https://api.example.org/search.json?query=who%3A%22Rembrandt%22",
		TotalResults: 12,
		Excluded:     1,
		FetchedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Artworks: []domain.Artwork{
			{
				ID: "/1/a", Title: "The Night Watch", TimePeriod: "17th century",
				Creators: []string{"Rembrandt"}, Provider: "Rijksmuseum",
			},
			{
				ID: "/1/b", Title: "The Syndics", TimePeriod: "17th century",
				Creators: []string{"Rembrandt", "Ferdinand Bol"}, Provider: "Rijksmuseum",
			},
			{
				ID: "/1/c", Title: "Untitled", TimePeriod: domain.UnknownPeriod,
				Creators: []string{"Ferdinand Bol"}, Provider: "Mauritshuis",
			},
		},
	}
}

// resetFlags restores every flag of cmd and its children to its default
// so commands can run repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args against the given
// services and returns what it wrote to stdout.
func executeCommand(t *testing.T, services *Services, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	SetServices(services)
	t.Cleanup(func() {
		SetServices(nil)
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := Execute(context.Background())
	return out.String(), err
}

// withCollections returns services backed by collections and default settings.
func withCollections(collections driving.CollectionService) *Services {
	return &Services{Collections: collections, Settings: newMockSettingsService()}
}
